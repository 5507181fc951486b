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

const customersDocumentIndex = "document-index"

type vehicleItem struct {
	Plate    string `dynamodbav:"plate"`
	Category string `dynamodbav:"category"`
}

type usageItem struct {
	Key          string `dynamodbav:"key"`
	SessionID    string `dynamodbav:"session_id,omitempty"`
	EntryTime    string `dynamodbav:"entry_time"`
	ExitTime     string `dynamodbav:"exit_time"`
	ElapsedNanos int64  `dynamodbav:"elapsed_ns"`
	Cost         int64  `dynamodbav:"cost"`
}

type customerItem struct {
	ID                string        `dynamodbav:"id"`
	Document          string        `dynamodbav:"document"`
	Name              string        `dynamodbav:"name"`
	Phone             string        `dynamodbav:"phone"`
	Email             string        `dynamodbav:"email"`
	SubscriptionKind  string        `dynamodbav:"subscription_kind"`
	SubscriptionStart string        `dynamodbav:"subscription_start,omitempty"`
	SubscriptionEnd   string        `dynamodbav:"subscription_end,omitempty"`
	Vehicles          []vehicleItem `dynamodbav:"vehicles"`
	VehiclePlates     []string      `dynamodbav:"vehicle_plates,stringset,omitempty"`
	History           []usageItem   `dynamodbav:"history"`
	UsageKeys         []string      `dynamodbav:"usage_keys,stringset,omitempty"`
	LastPaymentID     string        `dynamodbav:"last_payment_id,omitempty"`
	CreatedAt         string        `dynamodbav:"created_at"`
	UpdatedAt         string        `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI document-index: document (HASH)
//
// The history list is only ever appended to. usage_keys and vehicle_plates are
// string sets mirroring the lists so appends can be guarded with contains().

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client, tableName string) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
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
		if isConditionalCheckFailed(err) {
			return entities.Customer{}, interfaces.ErrDuplicateKey
		}
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}
	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) GetByDocument(ctx context.Context, document string) (entities.Customer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(customersDocumentIndex),
		KeyConditionExpression: aws.String("#document = :document"),
		ExpressionAttributeNames: map[string]string{
			"#document": "document",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":document": &types.AttributeValueMemberS{Value: document},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Items) == 0 {
		return entities.Customer{}, nil
	}
	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) List(ctx context.Context) ([]entities.Customer, error) {
	items, err := scanAll[customerItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Customer, 0, len(items))
	for _, it := range items {
		out = append(out, fromCustomerItem(it))
	}
	return out, nil
}

// Update writes profile and subscription fields. Vehicles and history are left
// alone; they have their own append operations.
func (r *CustomerDynamoRepository) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	return r.update(ctx, c.ID, "",
		"SET #name = :name, #phone = :phone, #email = :email, #sub_kind = :sub_kind, "+
			"#sub_start = :sub_start, #sub_end = :sub_end, #last_payment_id = :last_payment_id, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":name":            &types.AttributeValueMemberS{Value: c.Name},
			":phone":           &types.AttributeValueMemberS{Value: c.Phone},
			":email":           &types.AttributeValueMemberS{Value: c.Email},
			":sub_kind":        &types.AttributeValueMemberS{Value: string(c.Subscription.Kind)},
			":sub_start":       &types.AttributeValueMemberS{Value: formatTimePtr(c.Subscription.Start)},
			":sub_end":         &types.AttributeValueMemberS{Value: formatTimePtr(c.Subscription.End)},
			":last_payment_id": &types.AttributeValueMemberS{Value: c.LastPaymentID},
			":updated_at":      &types.AttributeValueMemberS{Value: formatTime(c.UpdatedAt)},
		},
		map[string]string{
			"#name":            "name",
			"#phone":           "phone",
			"#email":           "email",
			"#sub_kind":        "subscription_kind",
			"#sub_start":       "subscription_start",
			"#sub_end":         "subscription_end",
			"#last_payment_id": "last_payment_id",
			"#updated_at":      "updated_at",
		},
	)
}

// AddVehicle links a plate to the customer once. A plate already linked is not
// an error; the current record is returned.
func (r *CustomerDynamoRepository) AddVehicle(ctx context.Context, id string, v entities.CustomerVehicle) (entities.Customer, error) {
	entry, err := attributevalue.Marshal([]vehicleItem{{Plate: v.Plate, Category: string(v.Category)}})
	if err != nil {
		return entities.Customer{}, err
	}
	updated, err := r.update(ctx, id,
		"(attribute_not_exists(#plates) OR NOT contains(#plates, :plate))",
		"SET #vehicles = list_append(if_not_exists(#vehicles, :empty), :entry), #updated_at = :updated_at ADD #plates :plate_set",
		map[string]types.AttributeValue{
			":entry":      entry,
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":plate":      &types.AttributeValueMemberS{Value: v.Plate},
			":plate_set":  &types.AttributeValueMemberSS{Value: []string{v.Plate}},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		map[string]string{
			"#vehicles":   "vehicles",
			"#plates":     "vehicle_plates",
			"#updated_at": "updated_at",
		},
	)
	if err != nil {
		return entities.Customer{}, err
	}
	if updated.ID == "" {
		return r.GetByID(ctx, id)
	}
	return updated, nil
}

// AppendUsage reports false when the customer does not exist or the usage key
// is already recorded.
func (r *CustomerDynamoRepository) AppendUsage(ctx context.Context, id string, u entities.UsageRecord) (bool, error) {
	entry, err := attributevalue.Marshal([]usageItem{toUsageItem(u)})
	if err != nil {
		return false, err
	}
	updated, err := r.update(ctx, id,
		"(attribute_not_exists(#keys) OR NOT contains(#keys, :key))",
		"SET #history = list_append(if_not_exists(#history, :empty), :entry) ADD #keys :key_set",
		map[string]types.AttributeValue{
			":entry":   entry,
			":empty":   &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":key":     &types.AttributeValueMemberS{Value: u.Key},
			":key_set": &types.AttributeValueMemberSS{Value: []string{u.Key}},
		},
		map[string]string{
			"#history": "history",
			"#keys":    "usage_keys",
		},
	)
	if err != nil {
		return false, err
	}
	return updated.ID != "", nil
}

func (r *CustomerDynamoRepository) update(
	ctx context.Context,
	id string,
	extraCondition string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Customer, error) {
	condition := "attribute_exists(#id)"
	if extraCondition != "" {
		condition += " AND " + extraCondition
	}
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey("id", id),
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Customer{}, nil
		}
		return entities.Customer{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Customer{}, nil
	}
	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func toUsageItem(u entities.UsageRecord) usageItem {
	return usageItem{
		Key:          u.Key,
		SessionID:    u.SessionID,
		EntryTime:    formatTime(u.EntryTime),
		ExitTime:     formatTime(u.ExitTime),
		ElapsedNanos: int64(u.Elapsed),
		Cost:         u.Cost,
	}
}

func toCustomerItem(c entities.Customer) customerItem {
	it := customerItem{
		ID:                c.ID,
		Document:          c.Document,
		Name:              c.Name,
		Phone:             c.Phone,
		Email:             c.Email,
		SubscriptionKind:  string(c.Subscription.Kind),
		SubscriptionStart: formatTimePtr(c.Subscription.Start),
		SubscriptionEnd:   formatTimePtr(c.Subscription.End),
		Vehicles:          make([]vehicleItem, 0, len(c.Vehicles)),
		History:           make([]usageItem, 0, len(c.History)),
		LastPaymentID:     c.LastPaymentID,
		CreatedAt:         formatTime(c.CreatedAt),
		UpdatedAt:         formatTime(c.UpdatedAt),
	}
	for _, v := range c.Vehicles {
		it.Vehicles = append(it.Vehicles, vehicleItem{Plate: v.Plate, Category: string(v.Category)})
		it.VehiclePlates = append(it.VehiclePlates, v.Plate)
	}
	for _, u := range c.History {
		it.History = append(it.History, toUsageItem(u))
		it.UsageKeys = append(it.UsageKeys, u.Key)
	}
	return it
}

func fromCustomerItem(it customerItem) entities.Customer {
	c := entities.Customer{
		ID:       it.ID,
		Document: it.Document,
		Name:     it.Name,
		Phone:    it.Phone,
		Email:    it.Email,
		Subscription: entities.Subscription{
			Kind:  entities.SubscriptionKind(it.SubscriptionKind),
			Start: parseTimePtr(it.SubscriptionStart),
			End:   parseTimePtr(it.SubscriptionEnd),
		},
		Vehicles:      make([]entities.CustomerVehicle, 0, len(it.Vehicles)),
		History:       make([]entities.UsageRecord, 0, len(it.History)),
		LastPaymentID: it.LastPaymentID,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
	if c.Subscription.Kind == "" {
		c.Subscription.Kind = entities.SubscriptionNone
	}
	for _, v := range it.Vehicles {
		c.Vehicles = append(c.Vehicles, entities.CustomerVehicle{Plate: v.Plate, Category: entities.Category(v.Category)})
	}
	for _, u := range it.History {
		c.History = append(c.History, entities.UsageRecord{
			Key:       u.Key,
			SessionID: u.SessionID,
			EntryTime: parseTime(u.EntryTime),
			ExitTime:  parseTime(u.ExitTime),
			Elapsed:   time.Duration(u.ElapsedNanos),
			Cost:      u.Cost,
		})
	}
	return c
}
