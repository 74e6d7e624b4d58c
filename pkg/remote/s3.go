package remote

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type S3Client interface {
	GetObject(context.Context, *s3.GetObjectInput, ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type S3Fetcher struct {
	uri          string
	lock         *sync.Mutex
	serviceCache map[string]S3Client
}

func NewS3Fetcher(uri string) (*S3Fetcher, error) {
	return &S3Fetcher{
		uri:          uri,
		lock:         &sync.Mutex{},
		serviceCache: make(map[string]S3Client),
	}, nil
}

type s3ParsedUri struct {
	Bucket string
	Path   string
}

func s3ParseUri(uri string) (*s3ParsedUri, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return nil, ErrInvalidURI
	}
	return &s3ParsedUri{
		Bucket: parsed.Host,
		Path:   strings.TrimPrefix(parsed.Path, "/"),
	}, nil
}

func s3IsNotFoundErr(err error) bool {
	if err == nil {
		return false
	}
	var nf *types.NotFound
	var nsk *types.NoSuchKey
	return errors.As(err, &nf) || errors.As(err, &nsk)
}

func (f *S3Fetcher) getServiceForBucket(ctx context.Context, bucket string) (S3Client, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if svc, ok := f.serviceCache[bucket]; ok {
		return svc, nil
	}
	const defaultRegion = "us-east-1"
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(defaultRegion))
	if err != nil {
		return nil, err
	}
	svc := s3.NewFromConfig(cfg)
	region, err := manager.GetBucketRegion(ctx, svc, bucket)
	if err != nil {
		if s3IsNotFoundErr(err) {
			return nil, ErrDoesNotExist
		}
		return nil, err
	}
	if region != defaultRegion {
		cfg, err = config.LoadDefaultConfig(ctx, config.WithRegion(region))
		if err != nil {
			return nil, err
		}
		svc = s3.NewFromConfig(cfg)
	}
	f.serviceCache[bucket] = svc
	return svc, nil
}

func (f *S3Fetcher) Fetch(ctx context.Context, startOffset *int64, endOffset *int64) (io.ReadCloser, error) {
	parsed, err := s3ParseUri(f.uri)
	if err != nil {
		return nil, err
	}
	svc, err := f.getServiceForBucket(ctx, parsed.Bucket)
	if err != nil {
		return nil, err
	}
	rng := buildRange(startOffset, endOffset)
	slog.Debug("s3:GetObject", "uri", f.uri, "range", rng)
	out, err := svc.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(parsed.Bucket),
		Key:    aws.String(parsed.Path),
		Range:  rng,
	})
	if s3IsNotFoundErr(err) {
		return nil, ErrDoesNotExist
	} else if err != nil {
		return nil, err
	}
	return out.Body, nil
}
