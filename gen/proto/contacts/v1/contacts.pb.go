// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: contacts/v1/contacts.proto

package contactspb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Contact struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Company       string                 `protobuf:"bytes,3,opt,name=company,proto3" json:"company,omitempty"`
	Title         string                 `protobuf:"bytes,4,opt,name=title,proto3" json:"title,omitempty"`
	Email         string                 `protobuf:"bytes,5,opt,name=email,proto3" json:"email,omitempty"`
	Phone         string                 `protobuf:"bytes,6,opt,name=phone,proto3" json:"phone,omitempty"`
	Notes         string                 `protobuf:"bytes,7,opt,name=notes,proto3" json:"notes,omitempty"`
	Tags          []string               `protobuf:"bytes,8,rep,name=tags,proto3" json:"tags,omitempty"`
	Source        string                 `protobuf:"bytes,9,opt,name=source,proto3" json:"source,omitempty"`
	GroupId       string                 `protobuf:"bytes,10,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	HubspotId     string                 `protobuf:"bytes,11,opt,name=hubspot_id,json=hubspotId,proto3" json:"hubspot_id,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,12,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	UpdatedAt     string                 `protobuf:"bytes,13,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Contact) Reset() {
	*x = Contact{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Contact) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Contact) ProtoMessage() {}

func (x *Contact) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Contact.ProtoReflect.Descriptor instead.
func (*Contact) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{0}
}

func (x *Contact) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Contact) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Contact) GetCompany() string {
	if x != nil {
		return x.Company
	}
	return ""
}

func (x *Contact) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Contact) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Contact) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *Contact) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *Contact) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

func (x *Contact) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *Contact) GetGroupId() string {
	if x != nil {
		return x.GroupId
	}
	return ""
}

func (x *Contact) GetHubspotId() string {
	if x != nil {
		return x.HubspotId
	}
	return ""
}

func (x *Contact) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Contact) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Group struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,5,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Group) Reset() {
	*x = Group{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Group) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Group) ProtoMessage() {}

func (x *Group) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Group.ProtoReflect.Descriptor instead.
func (*Group) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{1}
}

func (x *Group) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Group) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Group) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Group) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Group) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateContactRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Company       string                 `protobuf:"bytes,2,opt,name=company,proto3" json:"company,omitempty"`
	Title         string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Email         string                 `protobuf:"bytes,4,opt,name=email,proto3" json:"email,omitempty"`
	Phone         string                 `protobuf:"bytes,5,opt,name=phone,proto3" json:"phone,omitempty"`
	Notes         string                 `protobuf:"bytes,6,opt,name=notes,proto3" json:"notes,omitempty"`
	Tags          []string               `protobuf:"bytes,7,rep,name=tags,proto3" json:"tags,omitempty"`
	GroupId       string                 `protobuf:"bytes,8,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateContactRequest) Reset() {
	*x = CreateContactRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateContactRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateContactRequest) ProtoMessage() {}

func (x *CreateContactRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateContactRequest.ProtoReflect.Descriptor instead.
func (*CreateContactRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{2}
}

func (x *CreateContactRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateContactRequest) GetCompany() string {
	if x != nil {
		return x.Company
	}
	return ""
}

func (x *CreateContactRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *CreateContactRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CreateContactRequest) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *CreateContactRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *CreateContactRequest) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

func (x *CreateContactRequest) GetGroupId() string {
	if x != nil {
		return x.GroupId
	}
	return ""
}

type CreateContactResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contact       *Contact               `protobuf:"bytes,1,opt,name=contact,proto3" json:"contact,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateContactResponse) Reset() {
	*x = CreateContactResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateContactResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateContactResponse) ProtoMessage() {}

func (x *CreateContactResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateContactResponse.ProtoReflect.Descriptor instead.
func (*CreateContactResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{3}
}

func (x *CreateContactResponse) GetContact() *Contact {
	if x != nil {
		return x.Contact
	}
	return nil
}

type GetContactRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContactRequest) Reset() {
	*x = GetContactRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContactRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContactRequest) ProtoMessage() {}

func (x *GetContactRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContactRequest.ProtoReflect.Descriptor instead.
func (*GetContactRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{4}
}

func (x *GetContactRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetContactResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contact       *Contact               `protobuf:"bytes,1,opt,name=contact,proto3" json:"contact,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContactResponse) Reset() {
	*x = GetContactResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContactResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContactResponse) ProtoMessage() {}

func (x *GetContactResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContactResponse.ProtoReflect.Descriptor instead.
func (*GetContactResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{5}
}

func (x *GetContactResponse) GetContact() *Contact {
	if x != nil {
		return x.Contact
	}
	return nil
}

type UpdateContactRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Company       string                 `protobuf:"bytes,3,opt,name=company,proto3" json:"company,omitempty"`
	Title         string                 `protobuf:"bytes,4,opt,name=title,proto3" json:"title,omitempty"`
	Email         string                 `protobuf:"bytes,5,opt,name=email,proto3" json:"email,omitempty"`
	Phone         string                 `protobuf:"bytes,6,opt,name=phone,proto3" json:"phone,omitempty"`
	Notes         string                 `protobuf:"bytes,7,opt,name=notes,proto3" json:"notes,omitempty"`
	Tags          []string               `protobuf:"bytes,8,rep,name=tags,proto3" json:"tags,omitempty"`
	GroupId       string                 `protobuf:"bytes,9,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateContactRequest) Reset() {
	*x = UpdateContactRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateContactRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateContactRequest) ProtoMessage() {}

func (x *UpdateContactRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateContactRequest.ProtoReflect.Descriptor instead.
func (*UpdateContactRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{6}
}

func (x *UpdateContactRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateContactRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UpdateContactRequest) GetCompany() string {
	if x != nil {
		return x.Company
	}
	return ""
}

func (x *UpdateContactRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *UpdateContactRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *UpdateContactRequest) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *UpdateContactRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *UpdateContactRequest) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

func (x *UpdateContactRequest) GetGroupId() string {
	if x != nil {
		return x.GroupId
	}
	return ""
}

type UpdateContactResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contact       *Contact               `protobuf:"bytes,1,opt,name=contact,proto3" json:"contact,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateContactResponse) Reset() {
	*x = UpdateContactResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateContactResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateContactResponse) ProtoMessage() {}

func (x *UpdateContactResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateContactResponse.ProtoReflect.Descriptor instead.
func (*UpdateContactResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{7}
}

func (x *UpdateContactResponse) GetContact() *Contact {
	if x != nil {
		return x.Contact
	}
	return nil
}

type DeleteContactRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteContactRequest) Reset() {
	*x = DeleteContactRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteContactRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteContactRequest) ProtoMessage() {}

func (x *DeleteContactRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteContactRequest.ProtoReflect.Descriptor instead.
func (*DeleteContactRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{8}
}

func (x *DeleteContactRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteContactResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteContactResponse) Reset() {
	*x = DeleteContactResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteContactResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteContactResponse) ProtoMessage() {}

func (x *DeleteContactResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteContactResponse.ProtoReflect.Descriptor instead.
func (*DeleteContactResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{9}
}

type ListContactsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GroupId       string                 `protobuf:"bytes,1,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	Tag           string                 `protobuf:"bytes,2,opt,name=tag,proto3" json:"tag,omitempty"`
	Query         string                 `protobuf:"bytes,3,opt,name=query,proto3" json:"query,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContactsRequest) Reset() {
	*x = ListContactsRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContactsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContactsRequest) ProtoMessage() {}

func (x *ListContactsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContactsRequest.ProtoReflect.Descriptor instead.
func (*ListContactsRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{10}
}

func (x *ListContactsRequest) GetGroupId() string {
	if x != nil {
		return x.GroupId
	}
	return ""
}

func (x *ListContactsRequest) GetTag() string {
	if x != nil {
		return x.Tag
	}
	return ""
}

func (x *ListContactsRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

type ListContactsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contacts      []*Contact             `protobuf:"bytes,1,rep,name=contacts,proto3" json:"contacts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContactsResponse) Reset() {
	*x = ListContactsResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContactsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContactsResponse) ProtoMessage() {}

func (x *ListContactsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContactsResponse.ProtoReflect.Descriptor instead.
func (*ListContactsResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{11}
}

func (x *ListContactsResponse) GetContacts() []*Contact {
	if x != nil {
		return x.Contacts
	}
	return nil
}

type SyncContactRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SyncContactRequest) Reset() {
	*x = SyncContactRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SyncContactRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SyncContactRequest) ProtoMessage() {}

func (x *SyncContactRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SyncContactRequest.ProtoReflect.Descriptor instead.
func (*SyncContactRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{12}
}

func (x *SyncContactRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type SyncContactResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	HubspotId     string                 `protobuf:"bytes,1,opt,name=hubspot_id,json=hubspotId,proto3" json:"hubspot_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SyncContactResponse) Reset() {
	*x = SyncContactResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SyncContactResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SyncContactResponse) ProtoMessage() {}

func (x *SyncContactResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SyncContactResponse.ProtoReflect.Descriptor instead.
func (*SyncContactResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{13}
}

func (x *SyncContactResponse) GetHubspotId() string {
	if x != nil {
		return x.HubspotId
	}
	return ""
}

type ExportContactsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GroupId       string                 `protobuf:"bytes,1,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	Tag           string                 `protobuf:"bytes,2,opt,name=tag,proto3" json:"tag,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportContactsRequest) Reset() {
	*x = ExportContactsRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportContactsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportContactsRequest) ProtoMessage() {}

func (x *ExportContactsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportContactsRequest.ProtoReflect.Descriptor instead.
func (*ExportContactsRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{14}
}

func (x *ExportContactsRequest) GetGroupId() string {
	if x != nil {
		return x.GroupId
	}
	return ""
}

func (x *ExportContactsRequest) GetTag() string {
	if x != nil {
		return x.Tag
	}
	return ""
}

type ExportContactsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Rows          int32                  `protobuf:"varint,2,opt,name=rows,proto3" json:"rows,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportContactsResponse) Reset() {
	*x = ExportContactsResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportContactsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportContactsResponse) ProtoMessage() {}

func (x *ExportContactsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportContactsResponse.ProtoReflect.Descriptor instead.
func (*ExportContactsResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{15}
}

func (x *ExportContactsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportContactsResponse) GetRows() int32 {
	if x != nil {
		return x.Rows
	}
	return 0
}

type CreateGroupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateGroupRequest) Reset() {
	*x = CreateGroupRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateGroupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateGroupRequest) ProtoMessage() {}

func (x *CreateGroupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateGroupRequest.ProtoReflect.Descriptor instead.
func (*CreateGroupRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{16}
}

func (x *CreateGroupRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateGroupRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type CreateGroupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Group         *Group                 `protobuf:"bytes,1,opt,name=group,proto3" json:"group,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateGroupResponse) Reset() {
	*x = CreateGroupResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateGroupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateGroupResponse) ProtoMessage() {}

func (x *CreateGroupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateGroupResponse.ProtoReflect.Descriptor instead.
func (*CreateGroupResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{17}
}

func (x *CreateGroupResponse) GetGroup() *Group {
	if x != nil {
		return x.Group
	}
	return nil
}

type ListGroupsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListGroupsRequest) Reset() {
	*x = ListGroupsRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListGroupsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListGroupsRequest) ProtoMessage() {}

func (x *ListGroupsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListGroupsRequest.ProtoReflect.Descriptor instead.
func (*ListGroupsRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{18}
}

type ListGroupsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Groups        []*Group               `protobuf:"bytes,1,rep,name=groups,proto3" json:"groups,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListGroupsResponse) Reset() {
	*x = ListGroupsResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListGroupsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListGroupsResponse) ProtoMessage() {}

func (x *ListGroupsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListGroupsResponse.ProtoReflect.Descriptor instead.
func (*ListGroupsResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{19}
}

func (x *ListGroupsResponse) GetGroups() []*Group {
	if x != nil {
		return x.Groups
	}
	return nil
}

type DeleteGroupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteGroupRequest) Reset() {
	*x = DeleteGroupRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteGroupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteGroupRequest) ProtoMessage() {}

func (x *DeleteGroupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteGroupRequest.ProtoReflect.Descriptor instead.
func (*DeleteGroupRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{20}
}

func (x *DeleteGroupRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteGroupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteGroupResponse) Reset() {
	*x = DeleteGroupResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteGroupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteGroupResponse) ProtoMessage() {}

func (x *DeleteGroupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteGroupResponse.ProtoReflect.Descriptor instead.
func (*DeleteGroupResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{21}
}

type Line struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	OrdinalIndex  int32                  `protobuf:"varint,2,opt,name=ordinal_index,json=ordinalIndex,proto3" json:"ordinal_index,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Line) Reset() {
	*x = Line{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Line) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Line) ProtoMessage() {}

func (x *Line) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Line.ProtoReflect.Descriptor instead.
func (*Line) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{22}
}

func (x *Line) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *Line) GetOrdinalIndex() int32 {
	if x != nil {
		return x.OrdinalIndex
	}
	return 0
}

type Candidate struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Line          *Line                  `protobuf:"bytes,1,opt,name=line,proto3" json:"line,omitempty"`
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	Confidence    float64                `protobuf:"fixed64,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Candidate) Reset() {
	*x = Candidate{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Candidate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Candidate) ProtoMessage() {}

func (x *Candidate) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Candidate.ProtoReflect.Descriptor instead.
func (*Candidate) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{23}
}

func (x *Candidate) GetLine() *Line {
	if x != nil {
		return x.Line
	}
	return nil
}

func (x *Candidate) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Candidate) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type CandidateSet struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Relevant      []*Line                `protobuf:"bytes,1,rep,name=relevant,proto3" json:"relevant,omitempty"`
	Filtered      []*Line                `protobuf:"bytes,2,rep,name=filtered,proto3" json:"filtered,omitempty"`
	Candidates    []*Candidate           `protobuf:"bytes,3,rep,name=candidates,proto3" json:"candidates,omitempty"` // all categories, scan order per category
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CandidateSet) Reset() {
	*x = CandidateSet{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CandidateSet) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CandidateSet) ProtoMessage() {}

func (x *CandidateSet) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CandidateSet.ProtoReflect.Descriptor instead.
func (*CandidateSet) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{24}
}

func (x *CandidateSet) GetRelevant() []*Line {
	if x != nil {
		return x.Relevant
	}
	return nil
}

func (x *CandidateSet) GetFiltered() []*Line {
	if x != nil {
		return x.Filtered
	}
	return nil
}

func (x *CandidateSet) GetCandidates() []*Candidate {
	if x != nil {
		return x.Candidates
	}
	return nil
}

type ScanJob struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Status         string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	ContactId      string                 `protobuf:"bytes,3,opt,name=contact_id,json=contactId,proto3" json:"contact_id,omitempty"`
	RawText        string                 `protobuf:"bytes,4,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	Candidates     *CandidateSet          `protobuf:"bytes,5,opt,name=candidates,proto3" json:"candidates,omitempty"`
	Selection      map[string]string      `protobuf:"bytes,6,rep,name=selection,proto3" json:"selection,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"` // category -> auto-selected text
	NameConfidence float64                `protobuf:"fixed64,7,opt,name=name_confidence,json=nameConfidence,proto3" json:"name_confidence,omitempty"`
	NeedsReview    bool                   `protobuf:"varint,8,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	ErrorMessage   string                 `protobuf:"bytes,9,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	StartedAt      string                 `protobuf:"bytes,10,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt     string                 `protobuf:"bytes,11,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ScanJob) Reset() {
	*x = ScanJob{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanJob) ProtoMessage() {}

func (x *ScanJob) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanJob.ProtoReflect.Descriptor instead.
func (*ScanJob) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{25}
}

func (x *ScanJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ScanJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ScanJob) GetContactId() string {
	if x != nil {
		return x.ContactId
	}
	return ""
}

func (x *ScanJob) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *ScanJob) GetCandidates() *CandidateSet {
	if x != nil {
		return x.Candidates
	}
	return nil
}

func (x *ScanJob) GetSelection() map[string]string {
	if x != nil {
		return x.Selection
	}
	return nil
}

func (x *ScanJob) GetNameConfidence() float64 {
	if x != nil {
		return x.NameConfidence
	}
	return 0
}

func (x *ScanJob) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *ScanJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ScanJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ScanJob) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type SubmitScanRequest struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	RawText string                 `protobuf:"bytes,1,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	Async   bool                   `protobuf:"varint,2,opt,name=async,proto3" json:"async,omitempty"` // queue the scan instead of classifying inline
	// Badge photo to run through the OCR service instead of raw_text. Image
	// submissions are classified inline; async applies to raw_text only.
	Image         []byte `protobuf:"bytes,3,opt,name=image,proto3" json:"image,omitempty"`
	MimeType      string `protobuf:"bytes,4,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitScanRequest) Reset() {
	*x = SubmitScanRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitScanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitScanRequest) ProtoMessage() {}

func (x *SubmitScanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitScanRequest.ProtoReflect.Descriptor instead.
func (*SubmitScanRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{26}
}

func (x *SubmitScanRequest) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *SubmitScanRequest) GetAsync() bool {
	if x != nil {
		return x.Async
	}
	return false
}

func (x *SubmitScanRequest) GetImage() []byte {
	if x != nil {
		return x.Image
	}
	return nil
}

func (x *SubmitScanRequest) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

type SubmitScanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ScanJob               `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitScanResponse) Reset() {
	*x = SubmitScanResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitScanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitScanResponse) ProtoMessage() {}

func (x *SubmitScanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitScanResponse.ProtoReflect.Descriptor instead.
func (*SubmitScanResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{27}
}

func (x *SubmitScanResponse) GetJob() *ScanJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetScanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetScanRequest) Reset() {
	*x = GetScanRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetScanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetScanRequest) ProtoMessage() {}

func (x *GetScanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetScanRequest.ProtoReflect.Descriptor instead.
func (*GetScanRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{28}
}

func (x *GetScanRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetScanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ScanJob               `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetScanResponse) Reset() {
	*x = GetScanResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetScanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetScanResponse) ProtoMessage() {}

func (x *GetScanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetScanResponse.ProtoReflect.Descriptor instead.
func (*GetScanResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{29}
}

func (x *GetScanResponse) GetJob() *ScanJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type ConfirmScanRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Id    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	// Final category -> value mapping after manual correction. An empty value
	// clears the category.
	Fields        map[string]string `protobuf:"bytes,2,rep,name=fields,proto3" json:"fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Tags          []string          `protobuf:"bytes,3,rep,name=tags,proto3" json:"tags,omitempty"`
	GroupId       string            `protobuf:"bytes,4,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	PushToCrm     bool              `protobuf:"varint,5,opt,name=push_to_crm,json=pushToCrm,proto3" json:"push_to_crm,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmScanRequest) Reset() {
	*x = ConfirmScanRequest{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmScanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmScanRequest) ProtoMessage() {}

func (x *ConfirmScanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmScanRequest.ProtoReflect.Descriptor instead.
func (*ConfirmScanRequest) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{30}
}

func (x *ConfirmScanRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ConfirmScanRequest) GetFields() map[string]string {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *ConfirmScanRequest) GetTags() []string {
	if x != nil {
		return x.Tags
	}
	return nil
}

func (x *ConfirmScanRequest) GetGroupId() string {
	if x != nil {
		return x.GroupId
	}
	return ""
}

func (x *ConfirmScanRequest) GetPushToCrm() bool {
	if x != nil {
		return x.PushToCrm
	}
	return false
}

type ConfirmScanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contact       *Contact               `protobuf:"bytes,1,opt,name=contact,proto3" json:"contact,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmScanResponse) Reset() {
	*x = ConfirmScanResponse{}
	mi := &file_contacts_v1_contacts_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmScanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmScanResponse) ProtoMessage() {}

func (x *ConfirmScanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contacts_v1_contacts_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmScanResponse.ProtoReflect.Descriptor instead.
func (*ConfirmScanResponse) Descriptor() ([]byte, []int) {
	return file_contacts_v1_contacts_proto_rawDescGZIP(), []int{31}
}

func (x *ConfirmScanResponse) GetContact() *Contact {
	if x != nil {
		return x.Contact
	}
	return nil
}

var File_contacts_v1_contacts_proto protoreflect.FileDescriptor

const file_contacts_v1_contacts_proto_rawDesc = "" +
	"\n" +
	"\x1acontacts/v1/contacts.proto\x12\vcontacts.v1\"\xc3\x02\n" +
	"\aContact\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\acompany\x18\x03 \x01(\tR\acompany\x12\x14\n" +
	"\x05title\x18\x04 \x01(\tR\x05title\x12\x14\n" +
	"\x05email\x18\x05 \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\x06 \x01(\tR\x05phone\x12\x14\n" +
	"\x05notes\x18\a \x01(\tR\x05notes\x12\x12\n" +
	"\x04tags\x18\b \x03(\tR\x04tags\x12\x16\n" +
	"\x06source\x18\t \x01(\tR\x06source\x12\x19\n" +
	"\bgroup_id\x18\n" +
	" \x01(\tR\agroupId\x12\x1d\n" +
	"\n" +
	"hubspot_id\x18\v \x01(\tR\thubspotId\x12\x1d\n" +
	"\n" +
	"created_at\x18\f \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\r \x01(\tR\tupdatedAt\"\x8b\x01\n" +
	"\x05Group\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x05 \x01(\tR\tupdatedAt\"\xcb\x01\n" +
	"\x14CreateContactRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x18\n" +
	"\acompany\x18\x02 \x01(\tR\acompany\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12\x14\n" +
	"\x05email\x18\x04 \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\x05 \x01(\tR\x05phone\x12\x14\n" +
	"\x05notes\x18\x06 \x01(\tR\x05notes\x12\x12\n" +
	"\x04tags\x18\a \x03(\tR\x04tags\x12\x19\n" +
	"\bgroup_id\x18\b \x01(\tR\agroupId\"G\n" +
	"\x15CreateContactResponse\x12.\n" +
	"\acontact\x18\x01 \x01(\v2\x14.contacts.v1.ContactR\acontact\"#\n" +
	"\x11GetContactRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"D\n" +
	"\x12GetContactResponse\x12.\n" +
	"\acontact\x18\x01 \x01(\v2\x14.contacts.v1.ContactR\acontact\"\xdb\x01\n" +
	"\x14UpdateContactRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\acompany\x18\x03 \x01(\tR\acompany\x12\x14\n" +
	"\x05title\x18\x04 \x01(\tR\x05title\x12\x14\n" +
	"\x05email\x18\x05 \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\x06 \x01(\tR\x05phone\x12\x14\n" +
	"\x05notes\x18\a \x01(\tR\x05notes\x12\x12\n" +
	"\x04tags\x18\b \x03(\tR\x04tags\x12\x19\n" +
	"\bgroup_id\x18\t \x01(\tR\agroupId\"G\n" +
	"\x15UpdateContactResponse\x12.\n" +
	"\acontact\x18\x01 \x01(\v2\x14.contacts.v1.ContactR\acontact\"&\n" +
	"\x14DeleteContactRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x17\n" +
	"\x15DeleteContactResponse\"X\n" +
	"\x13ListContactsRequest\x12\x19\n" +
	"\bgroup_id\x18\x01 \x01(\tR\agroupId\x12\x10\n" +
	"\x03tag\x18\x02 \x01(\tR\x03tag\x12\x14\n" +
	"\x05query\x18\x03 \x01(\tR\x05query\"H\n" +
	"\x14ListContactsResponse\x120\n" +
	"\bcontacts\x18\x01 \x03(\v2\x14.contacts.v1.ContactR\bcontacts\"$\n" +
	"\x12SyncContactRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"4\n" +
	"\x13SyncContactResponse\x12\x1d\n" +
	"\n" +
	"hubspot_id\x18\x01 \x01(\tR\thubspotId\"D\n" +
	"\x15ExportContactsRequest\x12\x19\n" +
	"\bgroup_id\x18\x01 \x01(\tR\agroupId\x12\x10\n" +
	"\x03tag\x18\x02 \x01(\tR\x03tag\"@\n" +
	"\x16ExportContactsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x12\n" +
	"\x04rows\x18\x02 \x01(\x05R\x04rows\"J\n" +
	"\x12CreateGroupRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\"?\n" +
	"\x13CreateGroupResponse\x12(\n" +
	"\x05group\x18\x01 \x01(\v2\x12.contacts.v1.GroupR\x05group\"\x13\n" +
	"\x11ListGroupsRequest\"@\n" +
	"\x12ListGroupsResponse\x12*\n" +
	"\x06groups\x18\x01 \x03(\v2\x12.contacts.v1.GroupR\x06groups\"$\n" +
	"\x12DeleteGroupRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x15\n" +
	"\x13DeleteGroupResponse\"?\n" +
	"\x04Line\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12#\n" +
	"\rordinal_index\x18\x02 \x01(\x05R\fordinalIndex\"n\n" +
	"\tCandidate\x12%\n" +
	"\x04line\x18\x01 \x01(\v2\x11.contacts.v1.LineR\x04line\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x01R\n" +
	"confidence\"\xa4\x01\n" +
	"\fCandidateSet\x12-\n" +
	"\brelevant\x18\x01 \x03(\v2\x11.contacts.v1.LineR\brelevant\x12-\n" +
	"\bfiltered\x18\x02 \x03(\v2\x11.contacts.v1.LineR\bfiltered\x126\n" +
	"\n" +
	"candidates\x18\x03 \x03(\v2\x16.contacts.v1.CandidateR\n" +
	"candidates\"\xd8\x03\n" +
	"\aScanJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"contact_id\x18\x03 \x01(\tR\tcontactId\x12\x19\n" +
	"\braw_text\x18\x04 \x01(\tR\arawText\x129\n" +
	"\n" +
	"candidates\x18\x05 \x01(\v2\x19.contacts.v1.CandidateSetR\n" +
	"candidates\x12A\n" +
	"\tselection\x18\x06 \x03(\v2#.contacts.v1.ScanJob.SelectionEntryR\tselection\x12'\n" +
	"\x0fname_confidence\x18\a \x01(\x01R\x0enameConfidence\x12!\n" +
	"\fneeds_review\x18\b \x01(\bR\vneedsReview\x12#\n" +
	"\rerror_message\x18\t \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"started_at\x18\n" +
	" \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\v \x01(\tR\n" +
	"finishedAt\x1a<\n" +
	"\x0eSelectionEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"w\n" +
	"\x11SubmitScanRequest\x12\x19\n" +
	"\braw_text\x18\x01 \x01(\tR\arawText\x12\x14\n" +
	"\x05async\x18\x02 \x01(\bR\x05async\x12\x14\n" +
	"\x05image\x18\x03 \x01(\fR\x05image\x12\x1b\n" +
	"\tmime_type\x18\x04 \x01(\tR\bmimeType\"<\n" +
	"\x12SubmitScanResponse\x12&\n" +
	"\x03job\x18\x01 \x01(\v2\x14.contacts.v1.ScanJobR\x03job\" \n" +
	"\x0eGetScanRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"9\n" +
	"\x0fGetScanResponse\x12&\n" +
	"\x03job\x18\x01 \x01(\v2\x14.contacts.v1.ScanJobR\x03job\"\xf3\x01\n" +
	"\x12ConfirmScanRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12C\n" +
	"\x06fields\x18\x02 \x03(\v2+.contacts.v1.ConfirmScanRequest.FieldsEntryR\x06fields\x12\x12\n" +
	"\x04tags\x18\x03 \x03(\tR\x04tags\x12\x19\n" +
	"\bgroup_id\x18\x04 \x01(\tR\agroupId\x12\x1e\n" +
	"\vpush_to_crm\x18\x05 \x01(\bR\tpushToCrm\x1a9\n" +
	"\vFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"E\n" +
	"\x13ConfirmScanResponse\x12.\n" +
	"\acontact\x18\x01 \x01(\v2\x14.contacts.v1.ContactR\acontact2\xdd\x06\n" +
	"\x0fContactsService\x12V\n" +
	"\rCreateContact\x12!.contacts.v1.CreateContactRequest\x1a\".contacts.v1.CreateContactResponse\x12M\n" +
	"\n" +
	"GetContact\x12\x1e.contacts.v1.GetContactRequest\x1a\x1f.contacts.v1.GetContactResponse\x12V\n" +
	"\rUpdateContact\x12!.contacts.v1.UpdateContactRequest\x1a\".contacts.v1.UpdateContactResponse\x12V\n" +
	"\rDeleteContact\x12!.contacts.v1.DeleteContactRequest\x1a\".contacts.v1.DeleteContactResponse\x12S\n" +
	"\fListContacts\x12 .contacts.v1.ListContactsRequest\x1a!.contacts.v1.ListContactsResponse\x12P\n" +
	"\vSyncContact\x12\x1f.contacts.v1.SyncContactRequest\x1a .contacts.v1.SyncContactResponse\x12Y\n" +
	"\x0eExportContacts\x12\".contacts.v1.ExportContactsRequest\x1a#.contacts.v1.ExportContactsResponse\x12P\n" +
	"\vCreateGroup\x12\x1f.contacts.v1.CreateGroupRequest\x1a .contacts.v1.CreateGroupResponse\x12M\n" +
	"\n" +
	"ListGroups\x12\x1e.contacts.v1.ListGroupsRequest\x1a\x1f.contacts.v1.ListGroupsResponse\x12P\n" +
	"\vDeleteGroup\x12\x1f.contacts.v1.DeleteGroupRequest\x1a .contacts.v1.DeleteGroupResponse2\xf4\x01\n" +
	"\vScanService\x12M\n" +
	"\n" +
	"SubmitScan\x12\x1e.contacts.v1.SubmitScanRequest\x1a\x1f.contacts.v1.SubmitScanResponse\x12D\n" +
	"\aGetScan\x12\x1b.contacts.v1.GetScanRequest\x1a\x1c.contacts.v1.GetScanResponse\x12P\n" +
	"\vConfirmScan\x12\x1f.contacts.v1.ConfirmScanRequest\x1a .contacts.v1.ConfirmScanResponseBDZBgithub.com/aferraro/badge-scanner/gen/proto/contacts/v1;contactspbb\x06proto3"

var (
	file_contacts_v1_contacts_proto_rawDescOnce sync.Once
	file_contacts_v1_contacts_proto_rawDescData []byte
)

func file_contacts_v1_contacts_proto_rawDescGZIP() []byte {
	file_contacts_v1_contacts_proto_rawDescOnce.Do(func() {
		file_contacts_v1_contacts_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_contacts_v1_contacts_proto_rawDesc), len(file_contacts_v1_contacts_proto_rawDesc)))
	})
	return file_contacts_v1_contacts_proto_rawDescData
}

var file_contacts_v1_contacts_proto_msgTypes = make([]protoimpl.MessageInfo, 34)
var file_contacts_v1_contacts_proto_goTypes = []any{
	(*Contact)(nil),                // 0: contacts.v1.Contact
	(*Group)(nil),                  // 1: contacts.v1.Group
	(*CreateContactRequest)(nil),   // 2: contacts.v1.CreateContactRequest
	(*CreateContactResponse)(nil),  // 3: contacts.v1.CreateContactResponse
	(*GetContactRequest)(nil),      // 4: contacts.v1.GetContactRequest
	(*GetContactResponse)(nil),     // 5: contacts.v1.GetContactResponse
	(*UpdateContactRequest)(nil),   // 6: contacts.v1.UpdateContactRequest
	(*UpdateContactResponse)(nil),  // 7: contacts.v1.UpdateContactResponse
	(*DeleteContactRequest)(nil),   // 8: contacts.v1.DeleteContactRequest
	(*DeleteContactResponse)(nil),  // 9: contacts.v1.DeleteContactResponse
	(*ListContactsRequest)(nil),    // 10: contacts.v1.ListContactsRequest
	(*ListContactsResponse)(nil),   // 11: contacts.v1.ListContactsResponse
	(*SyncContactRequest)(nil),     // 12: contacts.v1.SyncContactRequest
	(*SyncContactResponse)(nil),    // 13: contacts.v1.SyncContactResponse
	(*ExportContactsRequest)(nil),  // 14: contacts.v1.ExportContactsRequest
	(*ExportContactsResponse)(nil), // 15: contacts.v1.ExportContactsResponse
	(*CreateGroupRequest)(nil),     // 16: contacts.v1.CreateGroupRequest
	(*CreateGroupResponse)(nil),    // 17: contacts.v1.CreateGroupResponse
	(*ListGroupsRequest)(nil),      // 18: contacts.v1.ListGroupsRequest
	(*ListGroupsResponse)(nil),     // 19: contacts.v1.ListGroupsResponse
	(*DeleteGroupRequest)(nil),     // 20: contacts.v1.DeleteGroupRequest
	(*DeleteGroupResponse)(nil),    // 21: contacts.v1.DeleteGroupResponse
	(*Line)(nil),                   // 22: contacts.v1.Line
	(*Candidate)(nil),              // 23: contacts.v1.Candidate
	(*CandidateSet)(nil),           // 24: contacts.v1.CandidateSet
	(*ScanJob)(nil),                // 25: contacts.v1.ScanJob
	(*SubmitScanRequest)(nil),      // 26: contacts.v1.SubmitScanRequest
	(*SubmitScanResponse)(nil),     // 27: contacts.v1.SubmitScanResponse
	(*GetScanRequest)(nil),         // 28: contacts.v1.GetScanRequest
	(*GetScanResponse)(nil),        // 29: contacts.v1.GetScanResponse
	(*ConfirmScanRequest)(nil),     // 30: contacts.v1.ConfirmScanRequest
	(*ConfirmScanResponse)(nil),    // 31: contacts.v1.ConfirmScanResponse
	nil,                            // 32: contacts.v1.ScanJob.SelectionEntry
	nil,                            // 33: contacts.v1.ConfirmScanRequest.FieldsEntry
}
var file_contacts_v1_contacts_proto_depIdxs = []int32{
	0,  // 0: contacts.v1.CreateContactResponse.contact:type_name -> contacts.v1.Contact
	0,  // 1: contacts.v1.GetContactResponse.contact:type_name -> contacts.v1.Contact
	0,  // 2: contacts.v1.UpdateContactResponse.contact:type_name -> contacts.v1.Contact
	0,  // 3: contacts.v1.ListContactsResponse.contacts:type_name -> contacts.v1.Contact
	1,  // 4: contacts.v1.CreateGroupResponse.group:type_name -> contacts.v1.Group
	1,  // 5: contacts.v1.ListGroupsResponse.groups:type_name -> contacts.v1.Group
	22, // 6: contacts.v1.Candidate.line:type_name -> contacts.v1.Line
	22, // 7: contacts.v1.CandidateSet.relevant:type_name -> contacts.v1.Line
	22, // 8: contacts.v1.CandidateSet.filtered:type_name -> contacts.v1.Line
	23, // 9: contacts.v1.CandidateSet.candidates:type_name -> contacts.v1.Candidate
	24, // 10: contacts.v1.ScanJob.candidates:type_name -> contacts.v1.CandidateSet
	32, // 11: contacts.v1.ScanJob.selection:type_name -> contacts.v1.ScanJob.SelectionEntry
	25, // 12: contacts.v1.SubmitScanResponse.job:type_name -> contacts.v1.ScanJob
	25, // 13: contacts.v1.GetScanResponse.job:type_name -> contacts.v1.ScanJob
	33, // 14: contacts.v1.ConfirmScanRequest.fields:type_name -> contacts.v1.ConfirmScanRequest.FieldsEntry
	0,  // 15: contacts.v1.ConfirmScanResponse.contact:type_name -> contacts.v1.Contact
	2,  // 16: contacts.v1.ContactsService.CreateContact:input_type -> contacts.v1.CreateContactRequest
	4,  // 17: contacts.v1.ContactsService.GetContact:input_type -> contacts.v1.GetContactRequest
	6,  // 18: contacts.v1.ContactsService.UpdateContact:input_type -> contacts.v1.UpdateContactRequest
	8,  // 19: contacts.v1.ContactsService.DeleteContact:input_type -> contacts.v1.DeleteContactRequest
	10, // 20: contacts.v1.ContactsService.ListContacts:input_type -> contacts.v1.ListContactsRequest
	12, // 21: contacts.v1.ContactsService.SyncContact:input_type -> contacts.v1.SyncContactRequest
	14, // 22: contacts.v1.ContactsService.ExportContacts:input_type -> contacts.v1.ExportContactsRequest
	16, // 23: contacts.v1.ContactsService.CreateGroup:input_type -> contacts.v1.CreateGroupRequest
	18, // 24: contacts.v1.ContactsService.ListGroups:input_type -> contacts.v1.ListGroupsRequest
	20, // 25: contacts.v1.ContactsService.DeleteGroup:input_type -> contacts.v1.DeleteGroupRequest
	26, // 26: contacts.v1.ScanService.SubmitScan:input_type -> contacts.v1.SubmitScanRequest
	28, // 27: contacts.v1.ScanService.GetScan:input_type -> contacts.v1.GetScanRequest
	30, // 28: contacts.v1.ScanService.ConfirmScan:input_type -> contacts.v1.ConfirmScanRequest
	3,  // 29: contacts.v1.ContactsService.CreateContact:output_type -> contacts.v1.CreateContactResponse
	5,  // 30: contacts.v1.ContactsService.GetContact:output_type -> contacts.v1.GetContactResponse
	7,  // 31: contacts.v1.ContactsService.UpdateContact:output_type -> contacts.v1.UpdateContactResponse
	9,  // 32: contacts.v1.ContactsService.DeleteContact:output_type -> contacts.v1.DeleteContactResponse
	11, // 33: contacts.v1.ContactsService.ListContacts:output_type -> contacts.v1.ListContactsResponse
	13, // 34: contacts.v1.ContactsService.SyncContact:output_type -> contacts.v1.SyncContactResponse
	15, // 35: contacts.v1.ContactsService.ExportContacts:output_type -> contacts.v1.ExportContactsResponse
	17, // 36: contacts.v1.ContactsService.CreateGroup:output_type -> contacts.v1.CreateGroupResponse
	19, // 37: contacts.v1.ContactsService.ListGroups:output_type -> contacts.v1.ListGroupsResponse
	21, // 38: contacts.v1.ContactsService.DeleteGroup:output_type -> contacts.v1.DeleteGroupResponse
	27, // 39: contacts.v1.ScanService.SubmitScan:output_type -> contacts.v1.SubmitScanResponse
	29, // 40: contacts.v1.ScanService.GetScan:output_type -> contacts.v1.GetScanResponse
	31, // 41: contacts.v1.ScanService.ConfirmScan:output_type -> contacts.v1.ConfirmScanResponse
	29, // [29:42] is the sub-list for method output_type
	16, // [16:29] is the sub-list for method input_type
	16, // [16:16] is the sub-list for extension type_name
	16, // [16:16] is the sub-list for extension extendee
	0,  // [0:16] is the sub-list for field type_name
}

func init() { file_contacts_v1_contacts_proto_init() }
func file_contacts_v1_contacts_proto_init() {
	if File_contacts_v1_contacts_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_contacts_v1_contacts_proto_rawDesc), len(file_contacts_v1_contacts_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   34,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_contacts_v1_contacts_proto_goTypes,
		DependencyIndexes: file_contacts_v1_contacts_proto_depIdxs,
		MessageInfos:      file_contacts_v1_contacts_proto_msgTypes,
	}.Build()
	File_contacts_v1_contacts_proto = out.File
	file_contacts_v1_contacts_proto_goTypes = nil
	file_contacts_v1_contacts_proto_depIdxs = nil
}
