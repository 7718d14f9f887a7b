package dropbox

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	sdk "github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"
	"go.uber.org/zap"

	"github.com/phlak/clouddrop"
	"github.com/phlak/clouddrop/utils"
)

const writeModeAdd = "add"

// Upload sends the local file at localPath to destination, defaulting to the file's base name.
// Files up to the chunk size go in one request; larger files go through an upload session.
func (p *Provider) Upload(ctx context.Context, localPath, destination string) (*clouddrop.Metadata, error) {
	client, err := p.Client()
	if err != nil {
		return nil, utils.WrapUploadError(err)
	}

	f, err := os.Open(localPath) //nolint:gosec // caller chooses the local path
	if err != nil {
		return nil, utils.WrapUploadError(err)
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, utils.WrapUploadError(err)
	}
	if stat.IsDir() {
		return nil, utils.WrapUploadError(fmt.Errorf("%s is a directory", localPath))
	}

	if destination == "" {
		destination = filepath.Base(localPath)
	}
	destination = normalizePath(destination)

	var md *clouddrop.Metadata
	if size := stat.Size(); size <= p.options.chunkSize() {
		md, err = p.simpleUpload(ctx, client, f, size, destination)
	} else {
		md, err = p.chunkedUpload(ctx, client, f, size, destination)
	}
	if err != nil {
		return nil, utils.WrapUploadError(err)
	}
	return md, nil
}

func (p *Provider) simpleUpload(ctx context.Context, client Client, content io.Reader, size int64, destination string) (*clouddrop.Metadata, error) {
	arg := files.NewUploadArg(destination)
	arg.Mode = addMode()
	arg.Autorename = true
	arg.Mute = false

	md, err := client.Upload(ctx, arg, content)
	if err != nil {
		return nil, err
	}
	p.options.Metrics.AddUploaded(Name, size)
	return md, nil
}

// chunkedUpload streams content through an upload session in windows of the chunk size. Appends
// run sequentially in ascending offset order. The loop bound is inclusive, so a size that is an
// exact multiple of the chunk size ends with a zero-length append at offset == size.
func (p *Provider) chunkedUpload(ctx context.Context, client Client, content io.ReaderAt, size int64, destination string) (*clouddrop.Metadata, error) {
	logger := p.options.logger().With(zap.String("path", destination))

	start, err := client.UploadSessionStart(ctx, &files.UploadSessionStartArg{}, nil)
	if err != nil {
		return nil, err
	}
	sessionID := start.SessionId
	logger.Info("started upload session", zap.String("session_id", sessionID), zap.Int64("size", size))

	chunk := p.options.chunkSize()
	for offset := int64(0); offset <= size; offset += chunk {
		n := min(chunk, size-offset)
		arg := &files.UploadSessionAppendArg{
			Cursor: &files.UploadSessionCursor{SessionId: sessionID, Offset: uint64(offset)},
		}
		if err := client.UploadSessionAppendV2(ctx, arg, io.NewSectionReader(content, offset, n)); err != nil {
			return nil, err
		}
		p.options.Metrics.AddUploaded(Name, n)
		logger.Debug("appended upload session chunk", zap.Int64("offset", offset), zap.Int64("length", n))
	}

	commit := files.NewCommitInfo(destination)
	commit.Mode = addMode()
	commit.Autorename = false
	commit.Mute = false

	md, err := client.UploadSessionFinish(ctx, &files.UploadSessionFinishArg{
		Cursor: &files.UploadSessionCursor{SessionId: sessionID, Offset: uint64(size)},
		Commit: commit,
	}, nil)
	if err != nil {
		return nil, err
	}

	logger.Info("finished upload session", zap.String("session_id", sessionID))
	return md, nil
}

func addMode() *files.WriteMode {
	return &files.WriteMode{Tagged: sdk.Tagged{Tag: writeModeAdd}}
}
