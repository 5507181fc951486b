package repository

import (
	"context"
	"time"

	"parking_service/internal/domain/entities"
	"parking_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const spacesCategoryIndex = "category-code-index"

type spaceItem struct {
	Code      string `dynamodbav:"code"`
	Category  string `dynamodbav:"category"`
	Status    string `dynamodbav:"status"`
	SessionID string `dynamodbav:"session_id,omitempty"`
	Section   string `dynamodbav:"section,omitempty"`
	Level     int    `dynamodbav:"level,omitempty"`
	Position  string `dynamodbav:"position,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SpaceDynamoRepository persists Space entities in DynamoDB.
//
// Table requirements:
//   - PK: code (string)
//   - GSI category-code-index: category (HASH), code (RANGE)
//
// Occupy is a conditional update on status, which is what keeps a space from
// being handed to two sessions.

type SpaceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISpaceRepository = (*SpaceDynamoRepository)(nil)

func NewSpaceDynamoRepository(ddb *dynamodb.Client, tableName string) *SpaceDynamoRepository {
	return &SpaceDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SpaceDynamoRepository) Create(ctx context.Context, s entities.Space) (entities.Space, error) {
	av, err := attributevalue.MarshalMap(toSpaceItem(s))
	if err != nil {
		return entities.Space{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#code)"),
		ExpressionAttributeNames: map[string]string{
			"#code": "code",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Space{}, interfaces.ErrDuplicateKey
		}
		return entities.Space{}, err
	}
	return s, nil
}

func (r *SpaceDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Space, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("code", code),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Space{}, err
	}
	if len(out.Item) == 0 {
		return entities.Space{}, nil
	}
	var it spaceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Space{}, err
	}
	return fromSpaceItem(it), nil
}

func (r *SpaceDynamoRepository) List(ctx context.Context) ([]entities.Space, error) {
	items, err := scanAll[spaceItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return fromSpaceItems(items), nil
}

func (r *SpaceDynamoRepository) ListByCategory(ctx context.Context, category entities.Category) ([]entities.Space, error) {
	items, err := queryAll[spaceItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(spacesCategoryIndex),
		KeyConditionExpression: aws.String("#category = :category"),
		ExpressionAttributeNames: map[string]string{
			"#category": "category",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":category": &types.AttributeValueMemberS{Value: string(category)},
		},
	})
	if err != nil {
		return nil, err
	}
	return fromSpaceItems(items), nil
}

// Occupy returns a zero Space when the space is missing or no longer available.
func (r *SpaceDynamoRepository) Occupy(ctx context.Context, code string, sessionID string) (entities.Space, error) {
	return r.update(ctx, code, "#status = :available",
		"SET #status = :occupied, #session_id = :session_id, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":available":  &types.AttributeValueMemberS{Value: string(entities.SpaceStatusAvailable)},
			":occupied":   &types.AttributeValueMemberS{Value: string(entities.SpaceStatusOccupied)},
			":session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
		map[string]string{"#status": "status", "#session_id": "session_id"},
	)
}

// SetStatus writes a non-occupied status and drops the occupant binding.
func (r *SpaceDynamoRepository) SetStatus(ctx context.Context, code string, status entities.SpaceStatus) (entities.Space, error) {
	return r.update(ctx, code, "",
		"SET #status = :status, #updated_at = :updated_at REMOVE #session_id",
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		map[string]string{"#status": "status", "#session_id": "session_id"},
	)
}

// ReleaseIfOccupiedBy frees the space only while it is still bound to sessionID.
// It returns a zero Space when the space is missing or the binding changed.
func (r *SpaceDynamoRepository) ReleaseIfOccupiedBy(ctx context.Context, code string, sessionID string) (entities.Space, error) {
	return r.update(ctx, code, "#status = :occupied AND #session_id = :sid",
		"SET #status = :available, #updated_at = :updated_at REMOVE #session_id",
		map[string]types.AttributeValue{
			":occupied":  &types.AttributeValueMemberS{Value: string(entities.SpaceStatusOccupied)},
			":available": &types.AttributeValueMemberS{Value: string(entities.SpaceStatusAvailable)},
			":sid":       &types.AttributeValueMemberS{Value: sessionID},
		},
		map[string]string{"#status": "status", "#session_id": "session_id"},
	)
}

func (r *SpaceDynamoRepository) DeleteUnoccupied(ctx context.Context, code string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("code", code),
		ConditionExpression: aws.String("attribute_exists(#code) AND #status <> :occupied"),
		ExpressionAttributeNames: map[string]string{
			"#code":   "code",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":occupied": &types.AttributeValueMemberS{Value: string(entities.SpaceStatusOccupied)},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *SpaceDynamoRepository) update(
	ctx context.Context,
	code string,
	extraCondition string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Space, error) {
	condition := "attribute_exists(#code)"
	if extraCondition != "" {
		condition += " AND " + extraCondition
	}
	values[":updated_at"] = &types.AttributeValueMemberS{Value: formatTime(time.Now())}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey("code", code),
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#code": "code", "#updated_at": "updated_at"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Space{}, nil
		}
		return entities.Space{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Space{}, nil
	}
	var it spaceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Space{}, err
	}
	return fromSpaceItem(it), nil
}

func toSpaceItem(s entities.Space) spaceItem {
	return spaceItem{
		Code:      s.Code,
		Category:  string(s.Category),
		Status:    string(s.Status),
		SessionID: s.SessionID,
		Section:   s.Location.Section,
		Level:     s.Location.Level,
		Position:  s.Location.Position,
		CreatedAt: formatTime(s.CreatedAt),
		UpdatedAt: formatTime(s.UpdatedAt),
	}
}

func fromSpaceItem(it spaceItem) entities.Space {
	return entities.Space{
		Code:      it.Code,
		Category:  entities.Category(it.Category),
		Status:    entities.SpaceStatus(it.Status),
		SessionID: it.SessionID,
		Location: entities.Location{
			Section:  it.Section,
			Level:    it.Level,
			Position: it.Position,
		},
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

func fromSpaceItems(items []spaceItem) []entities.Space {
	out := make([]entities.Space, 0, len(items))
	for _, it := range items {
		out = append(out, fromSpaceItem(it))
	}
	return out
}
