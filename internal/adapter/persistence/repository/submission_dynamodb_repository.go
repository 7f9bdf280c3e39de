package repository

import (
	"context"
	"fmt"
	"time"

	"claimflow/internal/domain/entities"
	"claimflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSubmissionsTableName = "submissions"
	submissionsClaimIDIndex     = "claim_id-index"
)

type submissionItem struct {
	ID                      string `dynamodbav:"id"`
	ClaimID                 string `dynamodbav:"claim_id"`
	Method                  string `dynamodbav:"method"`
	ProviderName            string `dynamodbav:"provider_name,omitempty"`
	ConfirmationNumber      string `dynamodbav:"confirmation_number,omitempty"`
	TrackingNumber          string `dynamodbav:"tracking_number,omitempty"`
	FallbackUsed            bool   `dynamodbav:"fallback_used"`
	FallbackDocumentID      string `dynamodbav:"fallback_document_id,omitempty"`
	FallbackDocumentLocator string `dynamodbav:"fallback_document_locator,omitempty"`
	Active                  bool   `dynamodbav:"active"`
	SubmittedAt             string `dynamodbav:"submitted_at"`
}

// SubmissionDynamoRepository persists SubmissionRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: claim_id-index (PK: claim_id)

type SubmissionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubmissionRepository = (*SubmissionDynamoRepository)(nil)

func NewSubmissionDynamoRepository(ddb *dynamodb.Client) *SubmissionDynamoRepository {
	return &SubmissionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBMISSIONS_TABLE", defaultSubmissionsTableName),
	}
}

func (r *SubmissionDynamoRepository) Save(ctx context.Context, rec entities.SubmissionRecord) (entities.SubmissionRecord, error) {
	it := toSubmissionItem(rec)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.SubmissionRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.SubmissionRecord{}, err
	}
	return rec, nil
}

func (r *SubmissionDynamoRepository) GetByID(ctx context.Context, id string) (entities.SubmissionRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SubmissionRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.SubmissionRecord{}, nil
	}

	var it submissionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SubmissionRecord{}, err
	}
	return fromSubmissionItem(it)
}

func (r *SubmissionDynamoRepository) ListByClaimID(ctx context.Context, claimID string) ([]entities.SubmissionRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(submissionsClaimIDIndex),
		KeyConditionExpression: aws.String("claim_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: claimID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.SubmissionRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it submissionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		rec, err := fromSubmissionItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	return items, nil
}

// DeactivateByClaimID clears the active flag on every record of the claim so a
// new record can become the single active one.
func (r *SubmissionDynamoRepository) DeactivateByClaimID(ctx context.Context, claimID string) error {
	records, err := r.ListByClaimID(ctx, claimID)
	if err != nil {
		return err
	}

	for _, rec := range records {
		if !rec.Active {
			continue
		}
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: rec.ID},
			},
			ConditionExpression: aws.String("attribute_exists(#id)"),
			UpdateExpression:    aws.String("SET #active = :inactive"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":inactive": &types.AttributeValueMemberBOOL{Value: false},
			},
			ExpressionAttributeNames: map[string]string{
				"#id":     "id",
				"#active": "active",
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *SubmissionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toSubmissionItem(rec entities.SubmissionRecord) submissionItem {
	return submissionItem{
		ID:                      rec.ID,
		ClaimID:                 rec.ClaimID,
		Method:                  string(rec.Method),
		ProviderName:            rec.ProviderName,
		ConfirmationNumber:      rec.ConfirmationNumber,
		TrackingNumber:          rec.TrackingNumber,
		FallbackUsed:            rec.FallbackUsed,
		FallbackDocumentID:      rec.FallbackDocumentID,
		FallbackDocumentLocator: rec.FallbackDocumentLocator,
		Active:                  rec.Active,
		SubmittedAt:             rec.SubmittedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSubmissionItem(it submissionItem) (entities.SubmissionRecord, error) {
	submittedAt, err := time.Parse(time.RFC3339Nano, it.SubmittedAt)
	if err != nil {
		return entities.SubmissionRecord{}, fmt.Errorf("submission %s: corrupt submitted_at attribute: %w", it.ID, err)
	}
	return entities.SubmissionRecord{
		ID:                      it.ID,
		ClaimID:                 it.ClaimID,
		Method:                  entities.SubmissionMethod(it.Method),
		ProviderName:            it.ProviderName,
		ConfirmationNumber:      it.ConfirmationNumber,
		TrackingNumber:          it.TrackingNumber,
		FallbackUsed:            it.FallbackUsed,
		FallbackDocumentID:      it.FallbackDocumentID,
		FallbackDocumentLocator: it.FallbackDocumentLocator,
		Active:                  it.Active,
		SubmittedAt:             submittedAt,
	}, nil
}
