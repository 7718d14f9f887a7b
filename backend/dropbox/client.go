package dropbox

import (
	"context"
	"io"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"

	"github.com/phlak/clouddrop"
)

// Client is the subset of Dropbox API v2 routes used by Provider. Every call is bound to ctx.
type Client interface {
	GetMetadata(ctx context.Context, arg *files.GetMetadataArg) (*clouddrop.Metadata, error)
	ListFolder(ctx context.Context, arg *files.ListFolderArg) (entries []*clouddrop.Metadata, cursor string, hasMore bool, err error)
	ListFolderContinue(ctx context.Context, arg *files.ListFolderContinueArg) (entries []*clouddrop.Metadata, cursor string, hasMore bool, err error)
	Download(ctx context.Context, arg *files.DownloadArg) (*clouddrop.Metadata, []byte, error)
	Upload(ctx context.Context, arg *files.UploadArg, content io.Reader) (*clouddrop.Metadata, error)
	UploadSessionStart(ctx context.Context, arg *files.UploadSessionStartArg, content io.Reader) (*files.UploadSessionStartResult, error)
	UploadSessionAppendV2(ctx context.Context, arg *files.UploadSessionAppendArg, content io.Reader) error
	UploadSessionFinish(ctx context.Context, arg *files.UploadSessionFinishArg, content io.Reader) (*clouddrop.Metadata, error)
	DeleteV2(ctx context.Context, arg *files.DeleteArg) (*clouddrop.Metadata, error)
}
