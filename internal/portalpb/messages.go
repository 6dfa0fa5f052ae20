package portalpb

import (
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

type CreateAccountRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type CreateAccountResponse struct {
	UserID string `json:"user_id"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	AccessToken string `json:"access_token"`
}

type InsertRowRequest struct {
	Table  string         `json:"table"`
	Fields map[string]any `json:"fields"`
}

type SelectRowsRequest struct {
	Table string `json:"table"`
	Limit int    `json:"limit"`
}

type SelectRowsResponse struct {
	Rows []map[string]any `json:"rows"`
}

type ReportOrphanRequest struct {
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	Reason     string    `json:"reason"`
	DetectedAt time.Time `json:"detected_at"`
}

type PingResponse struct {
	Status string `json:"status"`
}

// Empty is the payload of RPCs that carry no data.
type Empty struct{}

// Encode converts v to a Struct through its JSON form. v must encode to a
// JSON object.
func Encode(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("portalpb encode: %w", err)
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("portalpb encode: %w", err)
	}
	return s, nil
}

// Decode fills v from s. A nil s decodes as an empty object.
func Decode(s *structpb.Struct, v any) error {
	if s == nil {
		s = &structpb.Struct{}
	}
	data, err := protojson.Marshal(s)
	if err != nil {
		return fmt.Errorf("portalpb decode: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("portalpb decode: %w", err)
	}
	return nil
}

// MustEncode is Encode for values that always encode, such as Empty.
func MustEncode(v any) *structpb.Struct {
	s, err := Encode(v)
	if err != nil {
		panic(err)
	}
	return s
}
