package weighingv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	RecordService_ListCatalog_FullMethodName      = "/weighing.v1.RecordService/ListCatalog"
	RecordService_Submit_FullMethodName           = "/weighing.v1.RecordService/Submit"
	RecordService_Query_FullMethodName            = "/weighing.v1.RecordService/Query"
	RecordService_ExportText_FullMethodName       = "/weighing.v1.RecordService/ExportText"
	RecordService_ExportPDF_FullMethodName        = "/weighing.v1.RecordService/ExportPDF"
	RecordService_DeleteRecord_FullMethodName     = "/weighing.v1.RecordService/DeleteRecord"
	RecordService_DeleteAllRecords_FullMethodName = "/weighing.v1.RecordService/DeleteAllRecords"
)

type RecordServiceServer interface {
	ListCatalog(context.Context, *ListCatalogRequest) (*ListCatalogResponse, error)
	Submit(context.Context, *SubmitRequest) (*SubmitResponse, error)
	Query(context.Context, *QueryRequest) (*QueryResponse, error)
	ExportText(context.Context, *ExportRequest) (*ExportResponse, error)
	ExportPDF(context.Context, *ExportRequest) (*ExportResponse, error)
	DeleteRecord(context.Context, *DeleteRecordRequest) (*DeleteRecordResponse, error)
	DeleteAllRecords(context.Context, *DeleteAllRecordsRequest) (*DeleteAllRecordsResponse, error)
}

// UnimplementedRecordServiceServer can be embedded to keep servers forward compatible.
type UnimplementedRecordServiceServer struct{}

func (UnimplementedRecordServiceServer) ListCatalog(context.Context, *ListCatalogRequest) (*ListCatalogResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCatalog not implemented")
}
func (UnimplementedRecordServiceServer) Submit(context.Context, *SubmitRequest) (*SubmitResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Submit not implemented")
}
func (UnimplementedRecordServiceServer) Query(context.Context, *QueryRequest) (*QueryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Query not implemented")
}
func (UnimplementedRecordServiceServer) ExportText(context.Context, *ExportRequest) (*ExportResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportText not implemented")
}
func (UnimplementedRecordServiceServer) ExportPDF(context.Context, *ExportRequest) (*ExportResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportPDF not implemented")
}
func (UnimplementedRecordServiceServer) DeleteRecord(context.Context, *DeleteRecordRequest) (*DeleteRecordResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteRecord not implemented")
}
func (UnimplementedRecordServiceServer) DeleteAllRecords(context.Context, *DeleteAllRecordsRequest) (*DeleteAllRecordsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteAllRecords not implemented")
}

var RecordService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "weighing.v1.RecordService",
	HandlerType: (*RecordServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListCatalog",
			Handler: unary(RecordService_ListCatalog_FullMethodName, func(srv interface{}, ctx context.Context, in *ListCatalogRequest) (*ListCatalogResponse, error) {
				return srv.(RecordServiceServer).ListCatalog(ctx, in)
			}),
		},
		{
			MethodName: "Submit",
			Handler: unary(RecordService_Submit_FullMethodName, func(srv interface{}, ctx context.Context, in *SubmitRequest) (*SubmitResponse, error) {
				return srv.(RecordServiceServer).Submit(ctx, in)
			}),
		},
		{
			MethodName: "Query",
			Handler: unary(RecordService_Query_FullMethodName, func(srv interface{}, ctx context.Context, in *QueryRequest) (*QueryResponse, error) {
				return srv.(RecordServiceServer).Query(ctx, in)
			}),
		},
		{
			MethodName: "ExportText",
			Handler: unary(RecordService_ExportText_FullMethodName, func(srv interface{}, ctx context.Context, in *ExportRequest) (*ExportResponse, error) {
				return srv.(RecordServiceServer).ExportText(ctx, in)
			}),
		},
		{
			MethodName: "ExportPDF",
			Handler: unary(RecordService_ExportPDF_FullMethodName, func(srv interface{}, ctx context.Context, in *ExportRequest) (*ExportResponse, error) {
				return srv.(RecordServiceServer).ExportPDF(ctx, in)
			}),
		},
		{
			MethodName: "DeleteRecord",
			Handler: unary(RecordService_DeleteRecord_FullMethodName, func(srv interface{}, ctx context.Context, in *DeleteRecordRequest) (*DeleteRecordResponse, error) {
				return srv.(RecordServiceServer).DeleteRecord(ctx, in)
			}),
		},
		{
			MethodName: "DeleteAllRecords",
			Handler: unary(RecordService_DeleteAllRecords_FullMethodName, func(srv interface{}, ctx context.Context, in *DeleteAllRecordsRequest) (*DeleteAllRecordsResponse, error) {
				return srv.(RecordServiceServer).DeleteAllRecords(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "weighing/v1/record.proto",
}

func RegisterRecordServiceServer(s grpc.ServiceRegistrar, srv RecordServiceServer) {
	s.RegisterService(&RecordService_ServiceDesc, srv)
}

type RecordServiceClient interface {
	ListCatalog(ctx context.Context, in *ListCatalogRequest, opts ...grpc.CallOption) (*ListCatalogResponse, error)
	Submit(ctx context.Context, in *SubmitRequest, opts ...grpc.CallOption) (*SubmitResponse, error)
	Query(ctx context.Context, in *QueryRequest, opts ...grpc.CallOption) (*QueryResponse, error)
	ExportText(ctx context.Context, in *ExportRequest, opts ...grpc.CallOption) (*ExportResponse, error)
	ExportPDF(ctx context.Context, in *ExportRequest, opts ...grpc.CallOption) (*ExportResponse, error)
	DeleteRecord(ctx context.Context, in *DeleteRecordRequest, opts ...grpc.CallOption) (*DeleteRecordResponse, error)
	DeleteAllRecords(ctx context.Context, in *DeleteAllRecordsRequest, opts ...grpc.CallOption) (*DeleteAllRecordsResponse, error)
}

type recordServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRecordServiceClient(cc grpc.ClientConnInterface) RecordServiceClient {
	return &recordServiceClient{cc: cc}
}

func (c *recordServiceClient) ListCatalog(ctx context.Context, in *ListCatalogRequest, opts ...grpc.CallOption) (*ListCatalogResponse, error) {
	return invoke[ListCatalogResponse](ctx, c.cc, RecordService_ListCatalog_FullMethodName, in, opts...)
}

func (c *recordServiceClient) Submit(ctx context.Context, in *SubmitRequest, opts ...grpc.CallOption) (*SubmitResponse, error) {
	return invoke[SubmitResponse](ctx, c.cc, RecordService_Submit_FullMethodName, in, opts...)
}

func (c *recordServiceClient) Query(ctx context.Context, in *QueryRequest, opts ...grpc.CallOption) (*QueryResponse, error) {
	return invoke[QueryResponse](ctx, c.cc, RecordService_Query_FullMethodName, in, opts...)
}

func (c *recordServiceClient) ExportText(ctx context.Context, in *ExportRequest, opts ...grpc.CallOption) (*ExportResponse, error) {
	return invoke[ExportResponse](ctx, c.cc, RecordService_ExportText_FullMethodName, in, opts...)
}

func (c *recordServiceClient) ExportPDF(ctx context.Context, in *ExportRequest, opts ...grpc.CallOption) (*ExportResponse, error) {
	return invoke[ExportResponse](ctx, c.cc, RecordService_ExportPDF_FullMethodName, in, opts...)
}

func (c *recordServiceClient) DeleteRecord(ctx context.Context, in *DeleteRecordRequest, opts ...grpc.CallOption) (*DeleteRecordResponse, error) {
	return invoke[DeleteRecordResponse](ctx, c.cc, RecordService_DeleteRecord_FullMethodName, in, opts...)
}

func (c *recordServiceClient) DeleteAllRecords(ctx context.Context, in *DeleteAllRecordsRequest, opts ...grpc.CallOption) (*DeleteAllRecordsResponse, error) {
	return invoke[DeleteAllRecordsResponse](ctx, c.cc, RecordService_DeleteAllRecords_FullMethodName, in, opts...)
}
