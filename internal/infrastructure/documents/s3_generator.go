package documents

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"claimflow/internal/domain/entities"
	"claimflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
)

var ErrMissingDocumentsBucket = errors.New("missing CLAIM_DOCUMENTS_BUCKET")

// S3PutObjectAPI is the slice of the S3 client the generator needs.
type S3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3DocumentGenerator renders a paper-equivalent claim form and stores it in
// S3. The document identity derives from the claim and submission IDs only, so
// regenerating for the same submission overwrites the same object instead of
// accumulating copies.

type S3DocumentGenerator struct {
	client S3PutObjectAPI
	bucket string
	log    *logrus.Entry
}

var _ interfaces.IFallbackDocumentGenerator = (*S3DocumentGenerator)(nil)

func NewS3DocumentGenerator(client S3PutObjectAPI, bucket string, logger *logrus.Logger) (*S3DocumentGenerator, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, ErrMissingDocumentsBucket
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &S3DocumentGenerator{
		client: client,
		bucket: bucket,
		log:    logger.WithField("component", "s3_document_generator"),
	}, nil
}

func (g *S3DocumentGenerator) Generate(ctx context.Context, claim entities.Claim, submissionID string) (interfaces.FallbackDocument, error) {
	docID := fmt.Sprintf("%s-%s", claim.ID, submissionID)
	key := objectKey(claim.ID, submissionID)
	body := renderClaimForm(claim, submissionID)

	_, err := g.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		g.log.WithError(err).WithField("key", key).Error("claim form upload failed")
		return interfaces.FallbackDocument{}, err
	}

	g.log.WithField("key", key).Info("claim form stored")
	return interfaces.FallbackDocument{
		ID:      docID,
		Locator: fmt.Sprintf("s3://%s/%s", g.bucket, key),
	}, nil
}

func objectKey(claimID, submissionID string) string {
	return fmt.Sprintf("claims/%s/submissions/%s/claim-form.txt", claimID, submissionID)
}

// renderClaimForm produces the plain-text paper form body. Layout is fixed so
// two renders of the same claim and submission are byte-identical.
func renderClaimForm(c entities.Claim, submissionID string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "HEALTH INSURANCE CLAIM FORM\n")
	fmt.Fprintf(&b, "===========================\n\n")
	fmt.Fprintf(&b, "Submission ID:   %s\n", submissionID)
	fmt.Fprintf(&b, "Claim ID:        %s\n", c.ID)
	fmt.Fprintf(&b, "Patient ID:      %s\n", c.PatientID)
	fmt.Fprintf(&b, "Provider:        %s\n", c.ProviderName)
	if c.ProviderNPI != "" {
		fmt.Fprintf(&b, "Provider NPI:    %s\n", c.ProviderNPI)
	}
	fmt.Fprintf(&b, "Date of Service: %s\n", c.DateOfService.UTC().Format("2006-01-02"))
	fmt.Fprintf(&b, "Amount:          %d.%02d\n\n", c.AmountCents/100, c.AmountCents%100)
	fmt.Fprintf(&b, "Procedure Codes (CPT): %s\n", strings.Join(c.CPTCodes, ", "))
	fmt.Fprintf(&b, "Diagnosis Codes (ICD-10): %s\n", strings.Join(c.ICDCodes, ", "))
	if len(c.DocumentRefs) > 0 {
		fmt.Fprintf(&b, "Supporting Documents: %s\n", strings.Join(c.DocumentRefs, ", "))
	}
	if c.Notes != "" {
		fmt.Fprintf(&b, "\nNotes:\n%s\n", c.Notes)
	}
	return []byte(b.String())
}
