package leadstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/stoneworks/lead-intake/internal/intake"
	"github.com/stoneworks/lead-intake/pkg/logging"
)

type mockDynamo struct {
	putInput *dynamodb.PutItemInput
	putErr   error
	getOut   *dynamodb.GetItemOutput
	getErr   error
}

func (m *mockDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	m.putInput = in
	if m.putErr != nil {
		return nil, m.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (m *mockDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.getOut != nil {
		return m.getOut, nil
	}
	return &dynamodb.GetItemOutput{}, nil
}

func samplePayload() *intake.LeadPayload {
	return &intake.LeadPayload{
		FullName:         "Dana Tremblay",
		Phone:            "(613) 555-0142",
		Email:            "dana@example.com",
		PostalCode:       "K1K 4W3",
		City:             "Ottawa",
		PreferredContact: "call",
		Service:          "interlock-installation",
		ServiceName:      "Interlock Installation",
		ProjectDetails:   "Approximate square footage: 300",
		PhotoURLs:        []string{"https://photos.example.com/leads/2026-08-31/a_b.jpg"},
		SubmittedAt:      "2026-08-31 14:05",
	}
}

func TestDynamoStore_SavePersistsRecord(t *testing.T) {
	mock := &mockDynamo{}
	fixed := time.Date(2026, 8, 31, 14, 5, 0, 0, time.UTC)
	store := NewDynamoStore(mock, "leads", logging.Default()).
		WithClock(func() time.Time { return fixed })

	res, err := store.Save(context.Background(), samplePayload())
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if !res.OK || res.ID == "" {
		t.Fatalf("expected OK result with ID, got %+v", res)
	}

	if mock.putInput == nil {
		t.Fatal("expected PutItem to be called")
	}
	if expr := mock.putInput.ConditionExpression; expr == nil || *expr != "attribute_not_exists(leadId)" {
		t.Fatalf("expected condition expression to prevent overwrites, got %v", expr)
	}

	var stored leadRecord
	if err := attributevalue.UnmarshalMap(mock.putInput.Item, &stored); err != nil {
		t.Fatalf("failed to unmarshal stored lead: %v", err)
	}
	if stored.LeadID != res.ID {
		t.Errorf("stored leadId %q does not match returned ID %q", stored.LeadID, res.ID)
	}
	if stored.Service != "interlock-installation" {
		t.Errorf("service = %q, want interlock-installation", stored.Service)
	}
	if stored.CreatedAt != fixed.Format(time.RFC3339Nano) {
		t.Errorf("createdAt = %q, want %q", stored.CreatedAt, fixed.Format(time.RFC3339Nano))
	}
	if len(stored.PhotoURLs) != 1 {
		t.Errorf("photoUrls length = %d, want 1", len(stored.PhotoURLs))
	}
}

func TestDynamoStore_SaveUnconfigured(t *testing.T) {
	store := NewDynamoStore(nil, "", logging.Default())

	res, err := store.Save(context.Background(), samplePayload())
	if err != nil {
		t.Fatalf("unconfigured store must not error, got: %v", err)
	}
	if res.OK {
		t.Fatal("expected OK=false for unconfigured store")
	}
	if res.Reason != ReasonNotConfigured {
		t.Fatalf("reason = %q, want %q", res.Reason, ReasonNotConfigured)
	}
}

func TestDynamoStore_SavePutFailure(t *testing.T) {
	mock := &mockDynamo{putErr: errors.New("throttled")}
	store := NewDynamoStore(mock, "leads", logging.Default())

	if _, err := store.Save(context.Background(), samplePayload()); err == nil {
		t.Fatal("expected error when PutItem fails")
	}
}

func TestDynamoStore_GetRoundTrip(t *testing.T) {
	record := leadRecord{
		LeadID:     "lead-1",
		FullName:   "Dana Tremblay",
		PostalCode: "K1K 4W3",
		City:       "Ottawa",
		Service:    "driveway-interlock-repair",
	}
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}

	mock := &mockDynamo{getOut: &dynamodb.GetItemOutput{Item: item}}
	store := NewDynamoStore(mock, "leads", logging.Default())

	payload, err := store.Get(context.Background(), "lead-1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if payload.FullName != "Dana Tremblay" || payload.Service != "driveway-interlock-repair" {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestDynamoStore_GetMissing(t *testing.T) {
	store := NewDynamoStore(&mockDynamo{}, "leads", logging.Default())

	if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, ErrLeadNotFound) {
		t.Fatalf("expected ErrLeadNotFound, got %v", err)
	}
}
