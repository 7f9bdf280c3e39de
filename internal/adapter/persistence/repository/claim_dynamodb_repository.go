package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"claimflow/internal/domain/entities"
	"claimflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultClaimsTableName = "claims"
	claimsPatientIDIndex   = "patient_id-index"
)

type claimItem struct {
	ID                  string   `dynamodbav:"id"`
	PatientID           string   `dynamodbav:"patient_id"`
	Status              string   `dynamodbav:"status"`
	AmountCents         int64    `dynamodbav:"amount_cents"`
	DateOfService       string   `dynamodbav:"date_of_service,omitempty"`
	ProviderName        string   `dynamodbav:"provider_name,omitempty"`
	ProviderNPI         string   `dynamodbav:"provider_npi,omitempty"`
	CPTCodes            []string `dynamodbav:"cpt_codes,omitempty"`
	ICDCodes            []string `dynamodbav:"icd_codes,omitempty"`
	Notes               string   `dynamodbav:"notes,omitempty"`
	DocumentRefs        []string `dynamodbav:"document_refs,omitempty"`
	ExternalClaimNumber string   `dynamodbav:"external_claim_number,omitempty"`
	DenialReason        string   `dynamodbav:"denial_reason,omitempty"`
	PaidAmountCents     int64    `dynamodbav:"paid_amount_cents,omitempty"`
	StatusCause         string   `dynamodbav:"status_cause,omitempty"`
	CreatedAt           string   `dynamodbav:"created_at"`
	UpdatedAt           string   `dynamodbav:"updated_at"`
}

// ClaimDynamoRepository persists Claim entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: patient_id-index (PK: patient_id)

type ClaimDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClaimRepository = (*ClaimDynamoRepository)(nil)

func NewClaimDynamoRepository(ddb *dynamodb.Client) *ClaimDynamoRepository {
	return &ClaimDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLAIMS_TABLE", defaultClaimsTableName),
	}
}

func (r *ClaimDynamoRepository) Create(ctx context.Context, c entities.Claim) (entities.Claim, error) {
	it := toClaimItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Claim{}, err
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
		return entities.Claim{}, err
	}
	return c, nil
}

func (r *ClaimDynamoRepository) GetByID(ctx context.Context, id string) (entities.Claim, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Claim{}, err
	}
	if len(out.Item) == 0 {
		return entities.Claim{}, nil
	}

	var it claimItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Claim{}, err
	}
	return fromClaimItem(it)
}

func (r *ClaimDynamoRepository) ListByPatientID(ctx context.Context, patientID string) ([]entities.Claim, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(claimsPatientIDIndex),
		KeyConditionExpression: aws.String("patient_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: patientID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Claim, 0, len(out.Items))
	for _, raw := range out.Items {
		var it claimItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		c, err := fromClaimItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, nil
}

func (r *ClaimDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ClaimStatus, cause string) (entities.Claim, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #status_cause = :cause, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":cause":      &types.AttributeValueMemberS{Value: cause},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":       "status",
			"#status_cause": "status_cause",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ClaimDynamoRepository) UpdateDenial(ctx context.Context, id, reason string) (entities.Claim, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #denial_reason = :reason, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":reason":     &types.AttributeValueMemberS{Value: reason},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#denial_reason": "denial_reason",
			"#updated_at":    "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ClaimDynamoRepository) UpdatePaidAmount(ctx context.Context, id string, amountCents int64) (entities.Claim, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #paid_amount_cents = :amount, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":amount":     &types.AttributeValueMemberN{Value: strconv.FormatInt(amountCents, 10)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#paid_amount_cents": "paid_amount_cents",
			"#updated_at":        "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ClaimDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Claim, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Claim{}, nil
		}
		return entities.Claim{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Claim{}, nil
	}
	var it claimItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Claim{}, err
	}
	return fromClaimItem(it)
}

func toClaimItem(c entities.Claim) claimItem {
	it := claimItem{
		ID:                  c.ID,
		PatientID:           c.PatientID,
		Status:              string(c.Status),
		AmountCents:         c.AmountCents,
		ProviderName:        c.ProviderName,
		ProviderNPI:         c.ProviderNPI,
		CPTCodes:            c.CPTCodes,
		ICDCodes:            c.ICDCodes,
		Notes:               c.Notes,
		DocumentRefs:        c.DocumentRefs,
		ExternalClaimNumber: c.ExternalClaimNumber,
		DenialReason:        c.DenialReason,
		PaidAmountCents:     c.PaidAmountCents,
		CreatedAt:           c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !c.DateOfService.IsZero() {
		it.DateOfService = c.DateOfService.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromClaimItem(it claimItem) (entities.Claim, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
	if err != nil {
		return entities.Claim{}, fmt.Errorf("claim %s: corrupt created_at attribute: %w", it.ID, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	if err != nil {
		return entities.Claim{}, fmt.Errorf("claim %s: corrupt updated_at attribute: %w", it.ID, err)
	}
	var dateOfService time.Time
	if it.DateOfService != "" {
		dateOfService, err = time.Parse(time.RFC3339Nano, it.DateOfService)
		if err != nil {
			return entities.Claim{}, fmt.Errorf("claim %s: corrupt date_of_service attribute: %w", it.ID, err)
		}
	}
	return entities.Claim{
		ID:                  it.ID,
		PatientID:           it.PatientID,
		Status:              entities.ClaimStatus(it.Status),
		AmountCents:         it.AmountCents,
		DateOfService:       dateOfService,
		ProviderName:        it.ProviderName,
		ProviderNPI:         it.ProviderNPI,
		CPTCodes:            it.CPTCodes,
		ICDCodes:            it.ICDCodes,
		Notes:               it.Notes,
		DocumentRefs:        it.DocumentRefs,
		ExternalClaimNumber: it.ExternalClaimNumber,
		DenialReason:        it.DenialReason,
		PaidAmountCents:     it.PaidAmountCents,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}, nil
}
