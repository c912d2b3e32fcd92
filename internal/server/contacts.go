package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	contactspb "github.com/aferraro/badge-scanner/gen/proto/contacts/v1"
	"github.com/aferraro/badge-scanner/internal/contacts"
	"github.com/aferraro/badge-scanner/internal/export"
	"github.com/aferraro/badge-scanner/internal/groups"
	"github.com/aferraro/badge-scanner/internal/utils"
)

type ContactsServer struct {
	contactspb.UnimplementedContactsServiceServer
	svc    *contacts.Service
	groups *groups.Service
	export *export.Service
	logger *slog.Logger
}

func NewContactsServer(svc *contacts.Service, groupSvc *groups.Service, exportSvc *export.Service, logger *slog.Logger) *ContactsServer {
	return &ContactsServer{
		svc:    svc,
		groups: groupSvc,
		export: exportSvc,
		logger: logger,
	}
}

func upsertFromPB(name, company, title, email, phone, notes string, tags []string, groupID string) contacts.UpsertContactRequest {
	return contacts.UpsertContactRequest{
		Name:    name,
		Company: company,
		Title:   title,
		Email:   email,
		Phone:   phone,
		Notes:   notes,
		Tags:    tags,
		GroupID: groupID,
	}
}

func (s *ContactsServer) CreateContact(ctx context.Context, req *contactspb.CreateContactRequest) (*contactspb.CreateContactResponse, error) {
	c, err := s.svc.CreateContact(ctx, upsertFromPB(
		req.GetName(), req.GetCompany(), req.GetTitle(), req.GetEmail(),
		req.GetPhone(), req.GetNotes(), req.GetTags(), req.GetGroupId(),
	))
	if err != nil {
		return nil, err
	}
	return &contactspb.CreateContactResponse{Contact: utils.ToPBContact(c)}, nil
}

func (s *ContactsServer) GetContact(ctx context.Context, req *contactspb.GetContactRequest) (*contactspb.GetContactResponse, error) {
	c, err := s.svc.GetContact(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	return &contactspb.GetContactResponse{Contact: utils.ToPBContact(c)}, nil
}

func (s *ContactsServer) UpdateContact(ctx context.Context, req *contactspb.UpdateContactRequest) (*contactspb.UpdateContactResponse, error) {
	c, err := s.svc.UpdateContact(ctx, req.GetId(), upsertFromPB(
		req.GetName(), req.GetCompany(), req.GetTitle(), req.GetEmail(),
		req.GetPhone(), req.GetNotes(), req.GetTags(), req.GetGroupId(),
	))
	if err != nil {
		return nil, err
	}
	return &contactspb.UpdateContactResponse{Contact: utils.ToPBContact(c)}, nil
}

func (s *ContactsServer) DeleteContact(ctx context.Context, req *contactspb.DeleteContactRequest) (*contactspb.DeleteContactResponse, error) {
	if err := s.svc.DeleteContact(ctx, req.GetId()); err != nil {
		return nil, err
	}
	return &contactspb.DeleteContactResponse{}, nil
}

func (s *ContactsServer) ListContacts(ctx context.Context, req *contactspb.ListContactsRequest) (*contactspb.ListContactsResponse, error) {
	list, err := s.svc.ListContacts(ctx, contacts.ListContactsRequest{
		GroupID: req.GetGroupId(),
		Tag:     req.GetTag(),
		Query:   req.GetQuery(),
	})
	if err != nil {
		return nil, err
	}
	out := make([]*contactspb.Contact, 0, len(list))
	for _, c := range list {
		out = append(out, utils.ToPBContact(c))
	}
	return &contactspb.ListContactsResponse{Contacts: out}, nil
}

func (s *ContactsServer) SyncContact(ctx context.Context, req *contactspb.SyncContactRequest) (*contactspb.SyncContactResponse, error) {
	hubspotID, err := s.svc.SyncContact(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	return &contactspb.SyncContactResponse{HubspotId: hubspotID}, nil
}

func (s *ContactsServer) ExportContacts(ctx context.Context, req *contactspb.ExportContactsRequest) (*contactspb.ExportContactsResponse, error) {
	var groupID *uuid.UUID
	if gid := strings.TrimSpace(req.GetGroupId()); gid != "" {
		parsed, err := uuid.Parse(gid)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "group_id must be a UUID")
		}
		groupID = &parsed
	}
	xlsx, rows, err := s.export.ExportContactsXLSX(ctx, groupID, req.GetTag())
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, status.Error(codes.Internal, "export failed")
	}
	return &contactspb.ExportContactsResponse{Xlsx: xlsx, Rows: int32(rows)}, nil
}

func (s *ContactsServer) CreateGroup(ctx context.Context, req *contactspb.CreateGroupRequest) (*contactspb.CreateGroupResponse, error) {
	g, err := s.groups.CreateGroup(ctx, req.GetName(), req.GetDescription())
	if err != nil {
		return nil, err
	}
	return &contactspb.CreateGroupResponse{Group: utils.ToPBGroup(g)}, nil
}

func (s *ContactsServer) ListGroups(ctx context.Context, _ *contactspb.ListGroupsRequest) (*contactspb.ListGroupsResponse, error) {
	list, err := s.groups.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*contactspb.Group, 0, len(list))
	for _, g := range list {
		out = append(out, utils.ToPBGroup(g))
	}
	return &contactspb.ListGroupsResponse{Groups: out}, nil
}

func (s *ContactsServer) DeleteGroup(ctx context.Context, req *contactspb.DeleteGroupRequest) (*contactspb.DeleteGroupResponse, error) {
	if err := s.groups.DeleteGroup(ctx, req.GetId()); err != nil {
		return nil, err
	}
	return &contactspb.DeleteGroupResponse{}, nil
}
