package service

import (
	"bytes"
	"context"
	"io"

	"github.com/mlehnert/linkup-backend/internal/media"
)

func prepareImageForUpload(ctx context.Context, processor media.Processor, upload media.Upload) (io.Reader, int64, string, error) {
	if processor == nil {
		return upload.Reader, upload.Size, upload.ContentType, nil
	}
	result, err := processor.Process(ctx, upload)
	if err != nil {
		return nil, 0, "", err
	}
	return bytes.NewReader(result.Bytes), int64(len(result.Bytes)), result.ContentType, nil
}
