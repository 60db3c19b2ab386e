// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        v7.35.1
// source: tls.proto

package sim

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

// GroupType tells which kind of agents a signal group controls.
type GroupType int32

const (
	GroupType_GROUP_TYPE_UNDEFINED  GroupType = 0
	GroupType_GROUP_TYPE_VEHICLE    GroupType = 1
	GroupType_GROUP_TYPE_PEDESTRIAN GroupType = 2
)

// Enum value maps for GroupType.
var (
	GroupType_name = map[int32]string{
		0: "GROUP_TYPE_UNDEFINED",
		1: "GROUP_TYPE_VEHICLE",
		2: "GROUP_TYPE_PEDESTRIAN",
	}
	GroupType_value = map[string]int32{
		"GROUP_TYPE_UNDEFINED":  0,
		"GROUP_TYPE_VEHICLE":    1,
		"GROUP_TYPE_PEDESTRIAN": 2,
	}
)

func (x GroupType) Enum() *GroupType {
	p := new(GroupType)
	*p = x
	return p
}

func (x GroupType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (GroupType) Descriptor() protoreflect.EnumDescriptor {
	return file_tls_proto_enumTypes[0].Descriptor()
}

func (GroupType) Type() protoreflect.EnumType {
	return &file_tls_proto_enumTypes[0]
}

func (x GroupType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use GroupType.Descriptor instead.
func (GroupType) EnumDescriptor() ([]byte, []int) {
	return file_tls_proto_rawDescGZIP(), []int{0}
}

// Group is a set of controlled cells sharing one per-phase signal row.
// signals holds one short token per phase ("r", "g", "y", "ry").
type Group struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Label           string                 `protobuf:"bytes,2,opt,name=label,proto3" json:"label,omitempty"`
	Cells           []int64                `protobuf:"varint,3,rep,packed,name=cells,proto3" json:"cells,omitempty"`
	Signals         []string               `protobuf:"bytes,4,rep,name=signals,proto3" json:"signals,omitempty"`
	Geom            []*Point               `protobuf:"bytes,5,rep,name=geom,proto3" json:"geom,omitempty"`
	Type            GroupType              `protobuf:"varint,6,opt,name=type,proto3,enum=micro_traffic_sim.GroupType" json:"type,omitempty"`
	CrosswalkLength float64                `protobuf:"fixed64,7,opt,name=crosswalk_length,json=crosswalkLength,proto3" json:"crosswalk_length,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Group) Reset() {
	*x = Group{}
	mi := &file_tls_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Group) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Group) ProtoMessage() {}

func (x *Group) ProtoReflect() protoreflect.Message {
	mi := &file_tls_proto_msgTypes[0]
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
	return file_tls_proto_rawDescGZIP(), []int{0}
}

func (x *Group) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Group) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *Group) GetCells() []int64 {
	if x != nil {
		return x.Cells
	}
	return nil
}

func (x *Group) GetSignals() []string {
	if x != nil {
		return x.Signals
	}
	return nil
}

func (x *Group) GetGeom() []*Point {
	if x != nil {
		return x.Geom
	}
	return nil
}

func (x *Group) GetType() GroupType {
	if x != nil {
		return x.Type
	}
	return GroupType_GROUP_TYPE_UNDEFINED
}

func (x *Group) GetCrosswalkLength() float64 {
	if x != nil {
		return x.CrosswalkLength
	}
	return 0
}

// TrafficLight is an intersection controller: ordered phase durations
// plus one or more signal groups.
type TrafficLight struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Geom          *Point                 `protobuf:"bytes,2,opt,name=geom,proto3" json:"geom,omitempty"`
	Groups        []*Group               `protobuf:"bytes,3,rep,name=groups,proto3" json:"groups,omitempty"`
	Times         []int64                `protobuf:"varint,4,rep,packed,name=times,proto3" json:"times,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TrafficLight) Reset() {
	*x = TrafficLight{}
	mi := &file_tls_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TrafficLight) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TrafficLight) ProtoMessage() {}

func (x *TrafficLight) ProtoReflect() protoreflect.Message {
	mi := &file_tls_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TrafficLight.ProtoReflect.Descriptor instead.
func (*TrafficLight) Descriptor() ([]byte, []int) {
	return file_tls_proto_rawDescGZIP(), []int{1}
}

func (x *TrafficLight) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *TrafficLight) GetGeom() *Point {
	if x != nil {
		return x.Geom
	}
	return nil
}

func (x *TrafficLight) GetGroups() []*Group {
	if x != nil {
		return x.Groups
	}
	return nil
}

func (x *TrafficLight) GetTimes() []int64 {
	if x != nil {
		return x.Times
	}
	return nil
}

type SessionTLS struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     *UUIDv4                `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Data          []*TrafficLight        `protobuf:"bytes,2,rep,name=data,proto3" json:"data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SessionTLS) Reset() {
	*x = SessionTLS{}
	mi := &file_tls_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SessionTLS) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SessionTLS) ProtoMessage() {}

func (x *SessionTLS) ProtoReflect() protoreflect.Message {
	mi := &file_tls_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SessionTLS.ProtoReflect.Descriptor instead.
func (*SessionTLS) Descriptor() ([]byte, []int) {
	return file_tls_proto_rawDescGZIP(), []int{2}
}

func (x *SessionTLS) GetSessionId() *UUIDv4 {
	if x != nil {
		return x.SessionId
	}
	return nil
}

func (x *SessionTLS) GetData() []*TrafficLight {
	if x != nil {
		return x.Data
	}
	return nil
}

type SessionTLSResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          uint32                 `protobuf:"varint,1,opt,name=code,proto3" json:"code,omitempty"`
	Text          string                 `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SessionTLSResponse) Reset() {
	*x = SessionTLSResponse{}
	mi := &file_tls_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SessionTLSResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SessionTLSResponse) ProtoMessage() {}

func (x *SessionTLSResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tls_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SessionTLSResponse.ProtoReflect.Descriptor instead.
func (*SessionTLSResponse) Descriptor() ([]byte, []int) {
	return file_tls_proto_rawDescGZIP(), []int{3}
}

func (x *SessionTLSResponse) GetCode() uint32 {
	if x != nil {
		return x.Code
	}
	return 0
}

func (x *SessionTLSResponse) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

var File_tls_proto protoreflect.FileDescriptor

const file_tls_proto_rawDesc = "" +
	"\n" +
	"\ttls.proto\x12\x11micro_traffic_sim\x1a\n" +
	"uuid.proto\x1a\n" +
	"cell.proto\"\xe8\x01\n" +
	"\x05Group\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x14\n" +
	"\x05label\x18\x02 \x01(\tR\x05label\x12\x14\n" +
	"\x05cells\x18\x03 \x03(\x03R\x05cells\x12\x18\n" +
	"\asignals\x18\x04 \x03(\tR\asignals\x12,\n" +
	"\x04geom\x18\x05 \x03(\v2\x18.micro_traffic_sim.PointR\x04geom\x120\n" +
	"\x04type\x18\x06 \x01(\x0e2\x1c.micro_traffic_sim.GroupTypeR\x04type\x12)\n" +
	"\x10crosswalk_length\x18\a \x01(\x01R\x0fcrosswalkLength\"\x94\x01\n" +
	"\fTrafficLight\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12,\n" +
	"\x04geom\x18\x02 \x01(\v2\x18.micro_traffic_sim.PointR\x04geom\x120\n" +
	"\x06groups\x18\x03 \x03(\v2\x18.micro_traffic_sim.GroupR\x06groups\x12\x14\n" +
	"\x05times\x18\x04 \x03(\x03R\x05times\"{\n" +
	"\n" +
	"SessionTLS\x128\n" +
	"\n" +
	"session_id\x18\x01 \x01(\v2\x19.micro_traffic_sim.UUIDv4R\tsessionId\x123\n" +
	"\x04data\x18\x02 \x03(\v2\x1f.micro_traffic_sim.TrafficLightR\x04data\"<\n" +
	"\x12SessionTLSResponse\x12\x12\n" +
	"\x04code\x18\x01 \x01(\rR\x04code\x12\x12\n" +
	"\x04text\x18\x02 \x01(\tR\x04text*X\n" +
	"\tGroupType\x12\x18\n" +
	"\x14GROUP_TYPE_UNDEFINED\x10\x00\x12\x16\n" +
	"\x12GROUP_TYPE_VEHICLE\x10\x01\x12\x19\n" +
	"\x15GROUP_TYPE_PEDESTRIAN\x10\x02B6Z4github.com/LdDl/micro-traffic-sim-grpc/proto/sim;simb\x06proto3"

var (
	file_tls_proto_rawDescOnce sync.Once
	file_tls_proto_rawDescData []byte
)

func file_tls_proto_rawDescGZIP() []byte {
	file_tls_proto_rawDescOnce.Do(func() {
		file_tls_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_tls_proto_rawDesc), len(file_tls_proto_rawDesc)))
	})
	return file_tls_proto_rawDescData
}

var file_tls_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_tls_proto_msgTypes = make([]protoimpl.MessageInfo, 4)
var file_tls_proto_goTypes = []any{
	(GroupType)(0),             // 0: micro_traffic_sim.GroupType
	(*Group)(nil),              // 1: micro_traffic_sim.Group
	(*TrafficLight)(nil),       // 2: micro_traffic_sim.TrafficLight
	(*SessionTLS)(nil),         // 3: micro_traffic_sim.SessionTLS
	(*SessionTLSResponse)(nil), // 4: micro_traffic_sim.SessionTLSResponse
	(*Point)(nil),              // 5: micro_traffic_sim.Point
	(*UUIDv4)(nil),             // 6: micro_traffic_sim.UUIDv4
}
var file_tls_proto_depIdxs = []int32{
	5, // 0: micro_traffic_sim.Group.geom:type_name -> micro_traffic_sim.Point
	0, // 1: micro_traffic_sim.Group.type:type_name -> micro_traffic_sim.GroupType
	5, // 2: micro_traffic_sim.TrafficLight.geom:type_name -> micro_traffic_sim.Point
	1, // 3: micro_traffic_sim.TrafficLight.groups:type_name -> micro_traffic_sim.Group
	6, // 4: micro_traffic_sim.SessionTLS.session_id:type_name -> micro_traffic_sim.UUIDv4
	2, // 5: micro_traffic_sim.SessionTLS.data:type_name -> micro_traffic_sim.TrafficLight
	6, // [6:6] is the sub-list for method output_type
	6, // [6:6] is the sub-list for method input_type
	6, // [6:6] is the sub-list for extension type_name
	6, // [6:6] is the sub-list for extension extendee
	0, // [0:6] is the sub-list for field type_name
}

func init() { file_tls_proto_init() }
func file_tls_proto_init() {
	if File_tls_proto != nil {
		return
	}
	file_uuid_proto_init()
	file_cell_proto_init()
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_tls_proto_rawDesc), len(file_tls_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   4,
			NumExtensions: 0,
			NumServices:   0,
		},
		GoTypes:           file_tls_proto_goTypes,
		DependencyIndexes: file_tls_proto_depIdxs,
		EnumInfos:         file_tls_proto_enumTypes,
		MessageInfos:      file_tls_proto_msgTypes,
	}.Build()
	File_tls_proto = out.File
	file_tls_proto_goTypes = nil
	file_tls_proto_depIdxs = nil
}
