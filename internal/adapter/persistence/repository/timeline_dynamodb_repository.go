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

const defaultTimelineTableName = "claim_timeline"

type timelineItem struct {
	ClaimID        string `dynamodbav:"claim_id"`
	EventSort      string `dynamodbav:"event_sort"`
	ID             string `dynamodbav:"id"`
	EventType      string `dynamodbav:"event_type"`
	Description    string `dynamodbav:"description,omitempty"`
	PreviousStatus string `dynamodbav:"previous_status,omitempty"`
	NewStatus      string `dynamodbav:"new_status,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// TimelineDynamoRepository persists ClaimTimelineEvent entities in DynamoDB.
// The table is append-only; events are never updated or removed.
//
// Table requirements:
//   - PK: claim_id (string)
//   - SK: event_sort (string, RFC3339Nano timestamp + event id)

type TimelineDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITimelineRepository = (*TimelineDynamoRepository)(nil)

func NewTimelineDynamoRepository(ddb *dynamodb.Client) *TimelineDynamoRepository {
	return &TimelineDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TIMELINE_TABLE", defaultTimelineTableName),
	}
}

func (r *TimelineDynamoRepository) Append(ctx context.Context, e entities.ClaimTimelineEvent) (entities.ClaimTimelineEvent, error) {
	it := toTimelineItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ClaimTimelineEvent{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{
			"#sk": "event_sort",
		},
	})
	if err != nil {
		return entities.ClaimTimelineEvent{}, err
	}
	return e, nil
}

func (r *TimelineDynamoRepository) ListByClaimID(ctx context.Context, claimID string) ([]entities.ClaimTimelineEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("claim_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: claimID},
		},
		// Sort key is timestamp-prefixed: ascending scan yields chronological
		// order.
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ClaimTimelineEvent, 0, len(out.Items))
	for _, raw := range out.Items {
		var it timelineItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		e, err := fromTimelineItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, nil
}

func toTimelineItem(e entities.ClaimTimelineEvent) timelineItem {
	return timelineItem{
		ClaimID:        e.ClaimID,
		EventSort:      e.SortKey(),
		ID:             e.ID,
		EventType:      string(e.EventType),
		Description:    e.Description,
		PreviousStatus: string(e.PreviousStatus),
		NewStatus:      string(e.NewStatus),
		CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTimelineItem(it timelineItem) (entities.ClaimTimelineEvent, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
	if err != nil {
		return entities.ClaimTimelineEvent{}, fmt.Errorf("timeline event %s: corrupt created_at attribute: %w", it.ID, err)
	}
	return entities.ClaimTimelineEvent{
		ID:             it.ID,
		ClaimID:        it.ClaimID,
		EventType:      entities.TimelineEventType(it.EventType),
		Description:    it.Description,
		PreviousStatus: entities.ClaimStatus(it.PreviousStatus),
		NewStatus:      entities.ClaimStatus(it.NewStatus),
		CreatedAt:      createdAt,
	}, nil
}
