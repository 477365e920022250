package leadstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/stoneworks/lead-intake/internal/intake"
	"github.com/stoneworks/lead-intake/pkg/logging"
)

// ErrLeadNotFound indicates the requested lead ID does not exist.
var ErrLeadNotFound = errors.New("leadstore: lead not found")

type dynamoAPI interface {
	PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(context.Context, *dynamodb.GetItemInput, ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// leadRecord is the DynamoDB shape of a captured lead.
type leadRecord struct {
	LeadID           string   `dynamodbav:"leadId" json:"leadId"`
	FullName         string   `dynamodbav:"fullName" json:"fullName"`
	Phone            string   `dynamodbav:"phone" json:"phone"`
	Email            string   `dynamodbav:"email" json:"email"`
	PostalCode       string   `dynamodbav:"postalCode" json:"postalCode"`
	City             string   `dynamodbav:"city" json:"city"`
	Address          string   `dynamodbav:"address,omitempty" json:"address,omitempty"`
	PreferredContact string   `dynamodbav:"preferredContact" json:"preferredContact"`
	Service          string   `dynamodbav:"service" json:"service"`
	ServiceName      string   `dynamodbav:"serviceName" json:"serviceName"`
	Message          string   `dynamodbav:"message,omitempty" json:"message,omitempty"`
	ProjectDetails   string   `dynamodbav:"projectDetails,omitempty" json:"projectDetails,omitempty"`
	PhotoURLs        []string `dynamodbav:"photoUrls,omitempty" json:"photoUrls,omitempty"`
	SubmittedAt      string   `dynamodbav:"submittedAt" json:"submittedAt"`
	CreatedAt        string   `dynamodbav:"createdAt" json:"createdAt"`
}

// DynamoStore persists leads to a DynamoDB table. A store without a table
// name or client reports not_configured instead of failing, so the rest of
// the submission pipeline keeps working in environments without AWS.
type DynamoStore struct {
	client    dynamoAPI
	tableName string
	clock     func() time.Time
	logger    *logging.Logger
}

// NewDynamoStore builds a store backed by the provided DynamoDB client.
// Either argument may be zero; the store then reports not_configured.
func NewDynamoStore(client dynamoAPI, tableName string, logger *logging.Logger) *DynamoStore {
	if logger == nil {
		logger = logging.Default()
	}
	return &DynamoStore{
		client:    client,
		tableName: tableName,
		clock:     time.Now,
		logger:    logger,
	}
}

// WithClock overrides the time source. Used in tests.
func (s *DynamoStore) WithClock(clock func() time.Time) *DynamoStore {
	if clock != nil {
		s.clock = clock
	}
	return s
}

// Configured reports whether the store can actually write.
func (s *DynamoStore) Configured() bool {
	return s != nil && s.client != nil && s.tableName != ""
}

// Save writes the lead as a new item. The conditional put guarantees a
// generated ID is never overwritten.
func (s *DynamoStore) Save(ctx context.Context, payload *intake.LeadPayload) (intake.SaveResult, error) {
	if payload == nil {
		return intake.SaveResult{}, errors.New("leadstore: payload cannot be nil")
	}
	if !s.Configured() {
		return intake.SaveResult{OK: false, Reason: ReasonNotConfigured}, nil
	}

	now := s.clock().UTC()
	record := leadRecord{
		LeadID:           uuid.New().String(),
		FullName:         payload.FullName,
		Phone:            payload.Phone,
		Email:            payload.Email,
		PostalCode:       payload.PostalCode,
		City:             payload.City,
		Address:          payload.Address,
		PreferredContact: payload.PreferredContact,
		Service:          payload.Service,
		ServiceName:      payload.ServiceName,
		Message:          payload.Message,
		ProjectDetails:   payload.ProjectDetails,
		PhotoURLs:        payload.PhotoURLs,
		SubmittedAt:      payload.SubmittedAt,
		CreatedAt:        now.Format(time.RFC3339Nano),
	}

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return intake.SaveResult{}, fmt.Errorf("leadstore: failed to marshal lead: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(leadId)"),
	})
	if err != nil {
		return intake.SaveResult{}, fmt.Errorf("leadstore: failed to persist lead: %w", err)
	}

	s.logger.Info("lead persisted", "lead_id", record.LeadID, "service", record.Service)
	return intake.SaveResult{OK: true, ID: record.LeadID}, nil
}

// Get fetches a lead by ID.
func (s *DynamoStore) Get(ctx context.Context, leadID string) (*intake.LeadPayload, error) {
	if leadID == "" {
		return nil, errors.New("leadstore: leadID required")
	}
	if !s.Configured() {
		return nil, errors.New("leadstore: dynamodb not configured")
	}

	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"leadId": &types.AttributeValueMemberS{Value: leadID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("leadstore: failed to fetch lead: %w", err)
	}
	if out.Item == nil {
		return nil, ErrLeadNotFound
	}

	var record leadRecord
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return nil, fmt.Errorf("leadstore: failed to decode lead: %w", err)
	}
	return &intake.LeadPayload{
		FullName:         record.FullName,
		Phone:            record.Phone,
		Email:            record.Email,
		PostalCode:       record.PostalCode,
		City:             record.City,
		Address:          record.Address,
		PreferredContact: record.PreferredContact,
		Service:          record.Service,
		ServiceName:      record.ServiceName,
		Message:          record.Message,
		ProjectDetails:   record.ProjectDetails,
		PhotoURLs:        record.PhotoURLs,
		SubmittedAt:      record.SubmittedAt,
	}, nil
}

var _ intake.LeadStore = (*DynamoStore)(nil)
