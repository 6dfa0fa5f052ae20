package grpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/ttioportal/internal/common"
	"github.com/dmitrijs2005/ttioportal/internal/models"
	"github.com/dmitrijs2005/ttioportal/internal/portalpb"
	"github.com/dmitrijs2005/ttioportal/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Messages mirror the wording of the hosted auth service so clients show the
// same text against either backend.
const (
	msgAlreadyRegistered  = "User already registered"
	msgWeakPassword       = "Password should be at least %d characters."
	msgInvalidEmail       = "Unable to validate email address: invalid format"
	msgInvalidCredentials = "Invalid login credentials"
	msgInternal           = "internal error"
)

func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, msgAlreadyRegistered)
	case errors.Is(err, services.ErrWeakPassword):
		return status.Error(codes.InvalidArgument, fmt.Sprintf(msgWeakPassword, services.MinPasswordLength))
	case errors.Is(err, services.ErrInvalidEmail):
		return status.Error(codes.InvalidArgument, msgInvalidEmail)
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, msgInvalidCredentials)
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, msgInternal)
	}
}

func decode(in *structpb.Struct, v any) error {
	if err := portalpb.Decode(in, v); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return nil
}

func encode(v any) (*structpb.Struct, error) {
	out, err := portalpb.Encode(v)
	if err != nil {
		return nil, status.Error(codes.Internal, msgInternal)
	}
	return out, nil
}

func (s *GRPCServer) CreateAccount(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req portalpb.CreateAccountRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}

	id, err := s.accounts.CreateAccount(ctx, req.Email, req.Password, req.Metadata)
	if err != nil {
		return nil, toStatus(err)
	}

	s.callLogger(ctx).Info(ctx, "account created", "account_id", id)
	return encode(portalpb.CreateAccountResponse{UserID: id})
}

func (s *GRPCServer) SignIn(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req portalpb.SignInRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}

	res, err := s.accounts.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}

	return encode(portalpb.SignInResponse{
		UserID:      res.UserID,
		Email:       res.Email,
		Role:        res.Role,
		AccessToken: res.AccessToken,
	})
}

func (s *GRPCServer) InsertRow(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req portalpb.InsertRowRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}

	if err := s.rows.Insert(ctx, req.Table, req.Fields); err != nil {
		return nil, toStatus(err)
	}
	return encode(portalpb.Empty{})
}

func (s *GRPCServer) SelectRows(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req portalpb.SelectRowsRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}

	rows, err := s.rows.Select(ctx, req.Table, req.Limit)
	if err != nil {
		return nil, toStatus(err)
	}
	if rows == nil {
		rows = []map[string]any{}
	}
	return encode(portalpb.SelectRowsResponse{Rows: rows})
}

func (s *GRPCServer) ReportOrphan(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req portalpb.ReportOrphanRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	if req.UserID == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	reportedBy, _ := userIDFromContext(ctx)
	err := s.orphans.Report(ctx, models.Orphan{
		UserID:     req.UserID,
		Email:      req.Email,
		Reason:     req.Reason,
		DetectedAt: req.DetectedAt,
		ReportedBy: reportedBy,
	})
	if err != nil {
		s.callLogger(ctx).Error(ctx, "orphan report failed", "orphan_user_id", req.UserID, "error", err)
		return nil, toStatus(err)
	}
	return encode(portalpb.Empty{})
}

func (s *GRPCServer) Ping(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return encode(portalpb.PingResponse{Status: "OK"})
}
