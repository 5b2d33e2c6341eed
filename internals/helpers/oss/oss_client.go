// internals/helpers/oss/oss_client.go
package helper

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

// OSSService membungkus satu bucket OSS + prefix folder aplikasi.
type OSSService struct {
	Client    *oss.Client
	Bucket    *oss.Bucket
	BucketURL string // https://<bucket>.<endpoint>
	Prefix    string // contoh: "uploads/"
}

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

// NewOSSServiceFromEnv membaca OSS_ENDPOINT / OSS_ACCESS_KEY_ID / OSS_ACCESS_KEY_SECRET / OSS_BUCKET
func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("OSS_ENDPOINT")
	keyID := getEnv("OSS_ACCESS_KEY_ID")
	keySecret := getEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := getEnv("OSS_BUCKET")

	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, errors.New("konfigurasi OSS belum lengkap (OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET)")
	}

	client, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, fmt.Errorf("init OSS client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("open OSS bucket: %w", err)
	}

	host := strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")
	return &OSSService{
		Client:    client,
		Bucket:    bucket,
		BucketURL: fmt.Sprintf("https://%s.%s", bucketName, host),
		Prefix:    strings.TrimPrefix(prefix, "/"),
	}, nil
}

// PutBytes menulis objek dan mengembalikan public URL + object key.
func (s *OSSService) PutBytes(dir, filename, contentType string, data []byte) (publicURL, objectKey string, err error) {
	key := s.buildKey(dir, filename)
	opts := []oss.Option{}
	if contentType != "" {
		opts = append(opts, oss.ContentType(contentType))
	}
	if err := s.Bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return "", "", fmt.Errorf("oss put %s: %w", key, err)
	}
	return s.BucketURL + "/" + key, key, nil
}

// PutStream menulis dari reader (dokumen besar) tanpa buffering penuh oleh caller.
func (s *OSSService) PutStream(dir, filename, contentType string, r io.Reader) (publicURL, objectKey string, err error) {
	key := s.buildKey(dir, filename)
	opts := []oss.Option{}
	if contentType != "" {
		opts = append(opts, oss.ContentType(contentType))
	}
	if err := s.Bucket.PutObject(key, r, opts...); err != nil {
		return "", "", fmt.Errorf("oss put %s: %w", key, err)
	}
	return s.BucketURL + "/" + key, key, nil
}

// DeleteByPublicURL menghapus objek dari public URL. Salah bucket → error.
func (s *OSSService) DeleteByPublicURL(publicURL string) error {
	key, err := s.KeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	if err := s.Bucket.DeleteObject(key); err != nil {
		return fmt.Errorf("oss delete %s: %w", key, err)
	}
	return nil
}

// KeyFromPublicURL memetakan public URL kembali ke object key.
func (s *OSSService) KeyFromPublicURL(publicURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(publicURL))
	if err != nil || u.Path == "" {
		return "", errors.New("URL objek tidak valid")
	}
	if !strings.HasPrefix(publicURL, s.BucketURL+"/") {
		return "", errors.New("URL bukan milik bucket ini")
	}
	return strings.TrimPrefix(u.Path, "/"), nil
}

// buildKey: prefix/dir/tahun-bulan/uuid+ext — nama asli tidak dipakai (hindari collision & karakter aneh)
func (s *OSSService) buildKey(dir, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	name := uuid.NewString() + ext
	parts := []string{}
	if s.Prefix != "" {
		parts = append(parts, strings.Trim(s.Prefix, "/"))
	}
	if dir != "" {
		parts = append(parts, strings.Trim(dir, "/"))
	}
	parts = append(parts, time.Now().Format("2006-01"), name)
	return strings.Join(parts, "/")
}
