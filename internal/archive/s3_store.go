package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/config"
	model "auction-engine/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	cr "github.com/cockroachdb/errors"
	"github.com/fxamacker/cbor/v2"
)

const contentTypeCBOR = "application/cbor"

// ObjectAPI is the subset of the S3 client the archive needs
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Store writes one CBOR object per archived auction
type S3Store struct {
	client ObjectAPI
	bucket string
	enc    cbor.EncMode
	dec    cbor.DecMode
}

// NewS3Store creates an archive store on top of an S3 client
func NewS3Store(client ObjectAPI, bucket string) (*S3Store, error) {
	encOpts := cbor.CanonicalEncOptions()
	encOpts.Time = cbor.TimeRFC3339Nano
	enc, err := encOpts.EncMode()
	if err != nil {
		return nil, fmt.Errorf("archive: cbor encoder: %w", err)
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return nil, fmt.Errorf("archive: cbor decoder: %w", err)
	}
	return &S3Store{client: client, bucket: bucket, enc: enc, dec: dec}, nil
}

// NewS3Client builds an S3 client from the archive settings. A custom endpoint
// switches to path-style addressing for MinIO and LocalStack.
func NewS3Client(ctx context.Context, cfg config.ArchiveConfig) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("archive: load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// ObjectKey returns the key an auction is archived under
func ObjectKey(auctionID string) string {
	return "auctions/" + auctionID + ".cbor"
}

// Put encodes rec and writes it under the auction's key. Rewriting the same key
// replaces the object, so retries never duplicate records.
func (s *S3Store) Put(ctx context.Context, rec model.ArchiveRecord) error {
	if rec.Auction.AuctionID == "" {
		return fmt.Errorf("archive put: %w - empty auction id", biddingerrors.ErrInvalidAuction)
	}

	body, err := s.enc.Marshal(rec)
	if err != nil {
		return fmt.Errorf("archive put %s: encode: %w", rec.Auction.AuctionID, err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(ObjectKey(rec.Auction.AuctionID)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentTypeCBOR),
	})
	if err != nil {
		return cr.Mark(fmt.Errorf("archive put %s: %w", rec.Auction.AuctionID, err), biddingerrors.ErrTransientStorage)
	}
	return nil
}

// Get reads and decodes the archived record of an auction
func (s *S3Store) Get(ctx context.Context, auctionID string) (model.ArchiveRecord, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(ObjectKey(auctionID)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return model.ArchiveRecord{}, fmt.Errorf("archive get %s: %w", auctionID, biddingerrors.ErrAuctionNotFound)
		}
		return model.ArchiveRecord{}, cr.Mark(fmt.Errorf("archive get %s: %w", auctionID, err), biddingerrors.ErrTransientStorage)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return model.ArchiveRecord{}, cr.Mark(fmt.Errorf("archive get %s: read body: %w", auctionID, err), biddingerrors.ErrTransientStorage)
	}

	var rec model.ArchiveRecord
	if err := s.dec.Unmarshal(body, &rec); err != nil {
		return model.ArchiveRecord{}, fmt.Errorf("archive get %s: decode: %w", auctionID, err)
	}
	return rec, nil
}
