package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"parking_service/internal/domain/entities"
	"parking_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	sessionsStatusIndex = "status-entry_time-index"
	sessionsPlateIndex  = "plate-entry_time-index"
)

type sessionItem struct {
	ID              string `dynamodbav:"id"`
	Plate           string `dynamodbav:"plate"`
	Category        string `dynamodbav:"category"`
	SpaceCode       string `dynamodbav:"space_code"`
	Status          string `dynamodbav:"status"`
	EntryTime       string `dynamodbav:"entry_time"`
	ExitTime        string `dynamodbav:"exit_time,omitempty"`
	ElapsedNanos    int64  `dynamodbav:"elapsed_ns"`
	Cost            int64  `dynamodbav:"cost"`
	CustomerID      string `dynamodbav:"customer_id,omitempty"`
	EntryOperatorID string `dynamodbav:"entry_operator_id,omitempty"`
	ExitOperatorID  string `dynamodbav:"exit_operator_id,omitempty"`
}

type activePlateItem struct {
	Plate     string `dynamodbav:"plate"`
	SessionID string `dynamodbav:"session_id"`
	EntryTime string `dynamodbav:"entry_time"`
}

// SessionDynamoRepository persists Session entities in DynamoDB.
//
// Table requirements:
//   - sessions, PK: id (string)
//     GSI status-entry_time-index: status (HASH), entry_time (RANGE)
//     GSI plate-entry_time-index: plate (HASH), entry_time (RANGE)
//   - active plates, PK: plate (string)
//
// An active session always has a row in the active plates table. Both are
// written in one transaction, so a plate can not have two active sessions.

type SessionDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	activeTable string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client, tableName, activeTable string) *SessionDynamoRepository {
	return &SessionDynamoRepository{ddb: ddb, tableName: tableName, activeTable: activeTable}
}

func (r *SessionDynamoRepository) CreateActive(ctx context.Context, s entities.Session) (entities.Session, error) {
	sessionAV, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return entities.Session{}, err
	}
	guardAV, err := attributevalue.MarshalMap(activePlateItem{
		Plate:     s.Plate,
		SessionID: s.ID,
		EntryTime: formatTime(s.EntryTime),
	})
	if err != nil {
		return entities.Session{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     sessionAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.activeTable),
				Item:                     guardAV,
				ConditionExpression:      aws.String("attribute_not_exists(#plate)"),
				ExpressionAttributeNames: map[string]string{"#plate": "plate"},
			}},
		},
	})
	if err != nil {
		if isTransactionConditionFailed(err) {
			return entities.Session{}, interfaces.ErrDuplicateKey
		}
		return entities.Session{}, err
	}
	return s, nil
}

func (r *SessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}
	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	return fromSessionItem(it), nil
}

// GetActiveByPlate resolves the plate through the guard table, which is read
// consistently, then loads the session.
func (r *SessionDynamoRepository) GetActiveByPlate(ctx context.Context, plate string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.activeTable),
		Key:            stringKey("plate", plate),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}
	var guard activePlateItem
	if err := attributevalue.UnmarshalMap(out.Item, &guard); err != nil {
		return entities.Session{}, err
	}
	s, err := r.GetByID(ctx, guard.SessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if !s.IsActive() {
		return entities.Session{}, nil
	}
	return s, nil
}

func (r *SessionDynamoRepository) GetLatestByPlate(ctx context.Context, plate string) (entities.Session, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(sessionsPlateIndex),
		KeyConditionExpression: aws.String("#plate = :plate"),
		ExpressionAttributeNames: map[string]string{
			"#plate": "plate",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":plate": &types.AttributeValueMemberS{Value: plate},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Items) == 0 {
		return entities.Session{}, nil
	}
	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Session{}, err
	}
	return fromSessionItem(it), nil
}

func (r *SessionDynamoRepository) ListByStatus(ctx context.Context, status entities.SessionStatus) ([]entities.Session, error) {
	items, err := queryAll[sessionItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(sessionsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}
	return fromSessionItems(items), nil
}

func (r *SessionDynamoRepository) ListByCustomer(ctx context.Context, customerID string) ([]entities.Session, error) {
	items, err := scanAll[sessionItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#customer_id = :customer_id"),
		ExpressionAttributeNames: map[string]string{
			"#customer_id": "customer_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":customer_id": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}
	return fromSessionItems(items), nil
}

func (r *SessionDynamoRepository) ListAll(ctx context.Context) ([]entities.Session, error) {
	items, err := scanAll[sessionItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return fromSessionItems(items), nil
}

// Close records the exit fields and removes the plate guard in one transaction.
// It returns a zero Session when the stored session is no longer active.
func (r *SessionDynamoRepository) Close(ctx context.Context, s entities.Session) (entities.Session, error) {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: &types.Update{
				TableName:           aws.String(r.tableName),
				Key:                 stringKey("id", s.ID),
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :active"),
				UpdateExpression: aws.String("SET #status = :closed, #exit_time = :exit_time, #elapsed = :elapsed, " +
					"#cost = :cost, #exit_operator_id = :exit_operator_id"),
				ExpressionAttributeNames: map[string]string{
					"#id":               "id",
					"#status":           "status",
					"#exit_time":        "exit_time",
					"#elapsed":          "elapsed_ns",
					"#cost":             "cost",
					"#exit_operator_id": "exit_operator_id",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":active":           &types.AttributeValueMemberS{Value: string(entities.SessionStatusActive)},
					":closed":           &types.AttributeValueMemberS{Value: string(entities.SessionStatusClosed)},
					":exit_time":        &types.AttributeValueMemberS{Value: formatTimePtr(s.ExitTime)},
					":elapsed":          &types.AttributeValueMemberN{Value: int64String(int64(s.Elapsed))},
					":cost":             &types.AttributeValueMemberN{Value: int64String(s.Cost)},
					":exit_operator_id": &types.AttributeValueMemberS{Value: s.ExitOperatorID},
				},
			}},
			{Delete: &types.Delete{
				TableName:                aws.String(r.activeTable),
				Key:                      stringKey("plate", s.Plate),
				ConditionExpression:      aws.String("#session_id = :session_id"),
				ExpressionAttributeNames: map[string]string{"#session_id": "session_id"},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":session_id": &types.AttributeValueMemberS{Value: s.ID},
				},
			}},
		},
	})
	if err != nil {
		if isTransactionConditionFailed(err) {
			return entities.Session{}, nil
		}
		return entities.Session{}, err
	}
	s.Status = entities.SessionStatusClosed
	return s, nil
}

// Delete removes a session. An active session loses its row and its plate
// guard in one transaction so the guard never outlives the session.
func (r *SessionDynamoRepository) Delete(ctx context.Context, id string) error {
	s, err := r.GetByID(ctx, id)
	if err != nil || s.ID == "" {
		return err
	}
	if s.IsActive() {
		_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: []types.TransactWriteItem{
				{Delete: &types.Delete{
					TableName:                aws.String(r.tableName),
					Key:                      stringKey("id", id),
					ConditionExpression:      aws.String("#status = :active"),
					ExpressionAttributeNames: map[string]string{"#status": "status"},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":active": &types.AttributeValueMemberS{Value: string(entities.SessionStatusActive)},
					},
				}},
				{Delete: &types.Delete{
					TableName:                aws.String(r.activeTable),
					Key:                      stringKey("plate", s.Plate),
					ConditionExpression:      aws.String("#session_id = :session_id"),
					ExpressionAttributeNames: map[string]string{"#session_id": "session_id"},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":session_id": &types.AttributeValueMemberS{Value: id},
					},
				}},
			},
		})
		if err == nil {
			return nil
		}
		if !isTransactionConditionFailed(err) {
			return err
		}
		// Closed in the meantime: Close already dropped the guard.
	}

	_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      stringKey("id", id),
		ConditionExpression:      aws.String("#status <> :active"),
		ExpressionAttributeNames: map[string]string{"#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberS{Value: string(entities.SessionStatusActive)},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return fmt.Errorf("session %s is active but its plate guard does not match", id)
		}
		return err
	}
	return nil
}

func toSessionItem(s entities.Session) sessionItem {
	return sessionItem{
		ID:              s.ID,
		Plate:           s.Plate,
		Category:        string(s.Category),
		SpaceCode:       s.SpaceCode,
		Status:          string(s.Status),
		EntryTime:       formatTime(s.EntryTime),
		ExitTime:        formatTimePtr(s.ExitTime),
		ElapsedNanos:    int64(s.Elapsed),
		Cost:            s.Cost,
		CustomerID:      s.CustomerID,
		EntryOperatorID: s.EntryOperatorID,
		ExitOperatorID:  s.ExitOperatorID,
	}
}

func fromSessionItem(it sessionItem) entities.Session {
	return entities.Session{
		ID:              it.ID,
		Plate:           it.Plate,
		Category:        entities.Category(it.Category),
		SpaceCode:       it.SpaceCode,
		Status:          entities.SessionStatus(it.Status),
		EntryTime:       parseTime(it.EntryTime),
		ExitTime:        parseTimePtr(it.ExitTime),
		Elapsed:         time.Duration(it.ElapsedNanos),
		Cost:            it.Cost,
		CustomerID:      it.CustomerID,
		EntryOperatorID: it.EntryOperatorID,
		ExitOperatorID:  it.ExitOperatorID,
	}
}

func fromSessionItems(items []sessionItem) []entities.Session {
	out := make([]entities.Session, 0, len(items))
	for _, it := range items {
		out = append(out, fromSessionItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EntryTime.Before(out[j].EntryTime) })
	return out
}
