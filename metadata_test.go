package clouddrop_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/phlak/clouddrop"
)

type metadataTest struct {
	suite.Suite
}

const fileRecord = `{
	".tag": "file",
	"name": "Prime_Numbers.txt",
	"id": "id:a4ayc_80_OEAAAAAAAAAXw",
	"client_modified": "2015-05-12T15:50:38Z",
	"server_modified": "2015-05-12T15:50:38Z",
	"rev": "a1c10ce0dd78",
	"size": 7212,
	"path_lower": "/homework/math/prime_numbers.txt",
	"path_display": "/Homework/math/Prime_Numbers.txt",
	"is_downloadable": true,
	"content_hash": "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
	"sharing_info": {"read_only": true, "parent_shared_folder_id": "84528192421"}
}`

func (s *metadataTest) TestUnmarshal() {
	var md clouddrop.Metadata
	s.Require().NoError(json.Unmarshal([]byte(fileRecord), &md))

	s.Equal(clouddrop.TagFile, md.Tag)
	s.Equal("Prime_Numbers.txt", md.Name)
	s.Equal("id:a4ayc_80_OEAAAAAAAAAXw", md.ID)
	s.Equal("/homework/math/prime_numbers.txt", md.PathLower)
	s.Equal("/Homework/math/Prime_Numbers.txt", md.PathDisplay)
	s.Equal(uint64(7212), md.Size)
	s.Equal("a1c10ce0dd78", md.Rev)
	s.Equal(time.Date(2015, 5, 12, 15, 50, 38, 0, time.UTC), md.ServerModified.UTC())
	s.JSONEq(fileRecord, string(md.Raw))
}

func (s *metadataTest) TestField() {
	var md clouddrop.Metadata
	s.Require().NoError(json.Unmarshal([]byte(fileRecord), &md))

	var sharing struct {
		ReadOnly bool   `json:"read_only"`
		ParentID string `json:"parent_shared_folder_id"`
	}
	ok, err := md.Field("sharing_info", &sharing)
	s.Require().NoError(err)
	s.True(ok)
	s.True(sharing.ReadOnly)
	s.Equal("84528192421", sharing.ParentID)

	var missing string
	ok, err = md.Field("media_info", &missing)
	s.Require().NoError(err)
	s.False(ok)

	var wrongType int
	ok, err = md.Field("name", &wrongType)
	s.True(ok)
	s.Error(err)
}

func (s *metadataTest) TestFieldWithoutRaw() {
	md := clouddrop.Metadata{Name: "a"}
	var name string
	ok, err := md.Field("name", &name)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *metadataTest) TestKinds() {
	tests := []struct {
		tag                       string
		isFile, isFolder, deleted bool
	}{
		{tag: clouddrop.TagFile, isFile: true},
		{tag: "", isFile: true},
		{tag: clouddrop.TagFolder, isFolder: true},
		{tag: clouddrop.TagDeleted, deleted: true},
	}

	for _, tt := range tests {
		md := clouddrop.Metadata{Tag: tt.tag}
		s.Equal(tt.isFile, md.IsFile(), "IsFile for tag %q", tt.tag)
		s.Equal(tt.isFolder, md.IsFolder(), "IsFolder for tag %q", tt.tag)
		s.Equal(tt.deleted, md.IsDeleted(), "IsDeleted for tag %q", tt.tag)
	}
}

func (s *metadataTest) TestUnmarshalListEntries() {
	var page struct {
		Entries []*clouddrop.Metadata `json:"entries"`
	}
	s.Require().NoError(json.Unmarshal([]byte(`{"entries":[{".tag":"folder","name":"math"},{".tag":"deleted","name":"old.txt"}]}`), &page))
	s.Require().Len(page.Entries, 2)
	s.True(page.Entries[0].IsFolder())
	s.True(page.Entries[1].IsDeleted())
	s.JSONEq(`{".tag":"deleted","name":"old.txt"}`, string(page.Entries[1].Raw))
}

func (s *metadataTest) TestMethodsOnReturnedValue() {
	var md clouddrop.Metadata
	s.Require().NoError(json.Unmarshal([]byte(fileRecord), &md))
	f := clouddrop.NewFile([]byte("x"), md)

	s.True(f.Metadata().IsFile())
	s.False(f.Metadata().IsFolder())
	s.False(f.Metadata().IsDeleted())

	var hash string
	ok, err := f.Metadata().Field("content_hash", &hash)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(md.ContentHash, hash)
}

func TestMetadata(t *testing.T) {
	suite.Run(t, new(metadataTest))
}
