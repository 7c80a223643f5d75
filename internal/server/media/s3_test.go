package media

import (
	"context"
	"errors"
	"strings"
	"testing"

	sc "github.com/Sumit-1325/auth-backend/internal/server/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func testConfig() *sc.Config {
	return &sc.Config{
		S3RootUser:     "admin",
		S3RootPassword: "pw",
		S3Bucket:       "avatars",
		S3Region:       "us-east-1",
		S3BaseEndpoint: "http://127.0.0.1:9000/",
	}
}

func withSeams(t *testing.T, put func(*s3.PutObjectInput) (*s3.PutObjectOutput, error), del func(*s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error)) {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	origPut := putObject
	origDel := deleteObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
		putObject = origPut
		deleteObject = origDel
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return put(in)
	}
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
		return del(in)
	}
}

func TestAvatarKey_PrefixAndUniqueness(t *testing.T) {
	a := AvatarKey()
	b := AvatarKey()
	if !strings.HasPrefix(a, "avatars/") {
		t.Fatalf("unexpected key: %q", a)
	}
	if a == b {
		t.Fatalf("two keys are identical: %q", a)
	}
}

func TestUpload_BuildsURL(t *testing.T) {
	var gotKey, gotBucket, gotType string
	withSeams(t,
		func(in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
			gotBucket = aws.ToString(in.Bucket)
			gotKey = aws.ToString(in.Key)
			gotType = aws.ToString(in.ContentType)
			return &s3.PutObjectOutput{}, nil
		},
		func(in *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
			t.Fatal("delete must not be called")
			return nil, nil
		},
	)

	store := NewS3Store(testConfig())
	url, err := store.Upload(context.Background(), "avatars/abc", "image/png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("Upload error: %v", err)
	}
	if url != "http://127.0.0.1:9000/avatars/avatars/abc" {
		t.Fatalf("unexpected url: %q", url)
	}
	if gotBucket != "avatars" || gotKey != "avatars/abc" || gotType != "image/png" {
		t.Fatalf("unexpected put input: bucket=%q key=%q type=%q", gotBucket, gotKey, gotType)
	}
}

func TestUpload_PutError(t *testing.T) {
	withSeams(t,
		func(in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
			return nil, errors.New("bucket gone")
		},
		func(in *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) { return nil, nil },
	)

	store := NewS3Store(testConfig())
	_, err := store.Upload(context.Background(), "avatars/abc", "image/png", strings.NewReader("x"))
	if err == nil || !strings.Contains(err.Error(), "s3 put") {
		t.Fatalf("expected wrapped put error, got %v", err)
	}
}

func TestDelete_RecoversKeyFromURL(t *testing.T) {
	var gotKey string
	withSeams(t,
		func(in *s3.PutObjectInput) (*s3.PutObjectOutput, error) { return nil, nil },
		func(in *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
			gotKey = aws.ToString(in.Key)
			return &s3.DeleteObjectOutput{}, nil
		},
	)

	store := NewS3Store(testConfig())
	err := store.Delete(context.Background(), "http://127.0.0.1:9000/avatars/avatars/abc")
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if gotKey != "avatars/abc" {
		t.Fatalf("unexpected key: %q", gotKey)
	}
}

func TestDelete_ForeignURL(t *testing.T) {
	withSeams(t,
		func(in *s3.PutObjectInput) (*s3.PutObjectOutput, error) { return nil, nil },
		func(in *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
			t.Fatal("delete must not be called for foreign URLs")
			return nil, nil
		},
	)

	store := NewS3Store(testConfig())
	if err := store.Delete(context.Background(), "https://elsewhere.example/file.png"); err == nil {
		t.Fatal("expected error for foreign URL")
	}
}
