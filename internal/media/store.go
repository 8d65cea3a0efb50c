// Package media stores uploaded post images under a local media root,
// mirroring a conventional MEDIA_ROOT layout (posts/<name>).
package media

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

var ErrNotImage = errors.New("file is not a decodable image")

type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(root, "posts"), 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return &Store{root: root}, nil
}

// SavePost checks the upload decodes as gif/jpeg/png and writes it under
// posts/, returning the stored relative path.
func (s *Store) SavePost(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if _, _, err := image.DecodeConfig(src); err != nil {
		return "", ErrNotImage
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	name := uuid.New().String() + filepath.Ext(fh.Filename)
	rel := filepath.Join("posts", name)
	dst, err := os.Create(filepath.Join(s.root, rel))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return rel, nil
}

// Root returns the media root directory.
func (s *Store) Root() string { return s.root }
