// internals/helpers/oss/oss_file_service.go
package helper

import (
	"bytes"
	"context"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/image/draw"
)

// batas ukuran upload (guard ringan di atas limit Fiber)
const (
	maxUploadSize   = int64(5 * 1024 * 1024)
	streamThreshold = int64(1 * 1024 * 1024)
)

/*
BlobService adalah facade upload/hapus yang seragam untuk controller & service.

  - UploadDocument: file apa adanya (PDF, DOC, dst) → (publicURL, objectKey)
  - UploadImage: re-encode ke WebP (resize keep-aspect maks 1600px)
  - DeleteByPublicURL: hapus objek; dipakai best-effort saat replace file
*/
type BlobService interface {
	UploadDocument(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL, objectKey string, err error)
	UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL, objectKey string, err error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

// OSSBlobService implementasi BlobService di atas Aliyun OSS.
type OSSBlobService struct {
	svc *OSSService
}

// NewOSSBlobServiceFromEnv membuat instance dari ENV. prefix opsional (contoh: "magang/")
func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) UploadDocument(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	if fh.Size > maxUploadSize {
		return "", "", fiber.NewError(fiber.StatusRequestEntityTooLarge, "Ukuran file maksimal 5MB")
	}
	// dokumen besar dialirkan langsung, tidak ditampung penuh di memori
	if fh.Size > streamThreshold {
		f, err := fh.Open()
		if err != nil {
			return "", "", err
		}
		defer f.Close()
		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}
		return b.svc.PutStream(dir, fh.Filename, ct, f)
	}
	data, contentType, err := readMultipart(fh)
	if err != nil {
		return "", "", err
	}
	return b.svc.PutBytes(dir, fh.Filename, contentType, data)
}

func (b *OSSBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	data, contentType, err := readMultipart(fh)
	if err != nil {
		return "", "", err
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "File bukan gambar")
	}
	out, err := encodeWebP(data, 1600, 1600, 80)
	if err != nil {
		// gagal decode → simpan apa adanya daripada menolak upload
		log.Printf("[WARN] re-encode webp gagal, simpan raw: %v", err)
		return b.svc.PutBytes(dir, fh.Filename, contentType, data)
	}
	return b.svc.PutBytes(dir, replaceExt(fh.Filename, ".webp"), "image/webp", out)
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	return b.svc.DeleteByPublicURL(publicURL)
}

/* ===============================
   Multipart util
=================================*/

func readMultipart(fh *multipart.FileHeader) ([]byte, string, error) {
	if fh == nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	if fh.Size > maxUploadSize {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "Ukuran file maksimal 5MB")
	}
	src, err := fh.Open()
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "Gagal membuka file")
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "Gagal membaca file")
	}
	data := buf.Bytes()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}

// TryGetFile mengambil file dari beberapa nama field umum; nil kalau tidak ada.
func TryGetFile(c *fiber.Ctx, names ...string) *multipart.FileHeader {
	for _, n := range names {
		if fh, err := c.FormFile(n); err == nil && fh != nil {
			return fh
		}
	}
	return nil
}

/* ===============================
   WebP re-encode (foto = lossy)
=================================*/

func encodeWebP(data []byte, maxW, maxH int, quality float32) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	img = scaleDown(img, maxW, maxH)

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// scaleDown resize keep-aspect; gambar kecil dibiarkan
func scaleDown(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return img
	}
	ratio := float64(maxW) / float64(w)
	if r2 := float64(maxH) / float64(h); r2 < ratio {
		ratio = r2
	}
	nw, nh := int(float64(w)*ratio), int(float64(h)*ratio)
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

func replaceExt(filename, newExt string) string {
	if i := strings.LastIndex(filename, "."); i > 0 {
		return filename[:i] + newExt
	}
	return filename + newExt
}
