/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hapi

import (
	"context"

	"google.golang.org/grpc"
)

type transactionCall func(srv interface{}, ctx context.Context, in *Transaction) (*TransactionResponse, error)

type queryCall func(srv interface{}, ctx context.Context, in *Query) (*Response, error)

type unaryHandler = func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error)

func transactionHandler(fullMethod string, call transactionCall) unaryHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Transaction)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv, ctx, req.(*Transaction))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func queryHandler(fullMethod string, call queryCall) unaryHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Query)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv, ctx, req.(*Query))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func invokeTransaction(ctx context.Context, cc *grpc.ClientConn, method string, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error) {
	out := new(TransactionResponse)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func invokeQuery(ctx context.Context, cc *grpc.ClientConn, method string, in *Query, opts ...grpc.CallOption) (*Response, error) {
	out := new(Response)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// CryptoServiceClient is the client API for the account service.
type CryptoServiceClient interface {
	CreateAccount(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error)
	UpdateAccount(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error)
	CryptoTransfer(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error)
	CryptoDelete(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error)
	AddClaim(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error)
	DeleteClaim(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error)
	GetClaim(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error)
	GetAccountRecords(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error)
	CryptoGetBalance(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error)
	GetAccountInfo(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error)
	GetTransactionReceipts(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error)
	GetTxRecordByTxID(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error)
	GetByKey(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error)
}

type cryptoServiceClient struct {
	cc *grpc.ClientConn
}

// NewCryptoServiceClient returns a CryptoServiceClient bound to cc
func NewCryptoServiceClient(cc *grpc.ClientConn) CryptoServiceClient {
	return &cryptoServiceClient{cc}
}

func (c *cryptoServiceClient) CreateAccount(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invokeTransaction(ctx, c.cc, "/proto.CryptoService/createAccount", in, opts...)
}

func (c *cryptoServiceClient) UpdateAccount(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invokeTransaction(ctx, c.cc, "/proto.CryptoService/updateAccount", in, opts...)
}

func (c *cryptoServiceClient) CryptoTransfer(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invokeTransaction(ctx, c.cc, "/proto.CryptoService/cryptoTransfer", in, opts...)
}

func (c *cryptoServiceClient) CryptoDelete(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invokeTransaction(ctx, c.cc, "/proto.CryptoService/cryptoDelete", in, opts...)
}

func (c *cryptoServiceClient) AddClaim(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invokeTransaction(ctx, c.cc, "/proto.CryptoService/addClaim", in, opts...)
}

func (c *cryptoServiceClient) DeleteClaim(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invokeTransaction(ctx, c.cc, "/proto.CryptoService/deleteClaim", in, opts...)
}

func (c *cryptoServiceClient) GetClaim(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error) {
	return invokeQuery(ctx, c.cc, "/proto.CryptoService/getClaim", in, opts...)
}

func (c *cryptoServiceClient) GetAccountRecords(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error) {
	return invokeQuery(ctx, c.cc, "/proto.CryptoService/getAccountRecords", in, opts...)
}

func (c *cryptoServiceClient) CryptoGetBalance(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error) {
	return invokeQuery(ctx, c.cc, "/proto.CryptoService/cryptoGetBalance", in, opts...)
}

func (c *cryptoServiceClient) GetAccountInfo(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error) {
	return invokeQuery(ctx, c.cc, "/proto.CryptoService/getAccountInfo", in, opts...)
}

func (c *cryptoServiceClient) GetTransactionReceipts(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error) {
	return invokeQuery(ctx, c.cc, "/proto.CryptoService/getTransactionReceipts", in, opts...)
}

func (c *cryptoServiceClient) GetTxRecordByTxID(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error) {
	return invokeQuery(ctx, c.cc, "/proto.CryptoService/getTxRecordByTxID", in, opts...)
}

func (c *cryptoServiceClient) GetByKey(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error) {
	return invokeQuery(ctx, c.cc, "/proto.CryptoService/getByKey", in, opts...)
}

// CryptoServiceServer is the server API for the account service.
type CryptoServiceServer interface {
	CreateAccount(context.Context, *Transaction) (*TransactionResponse, error)
	UpdateAccount(context.Context, *Transaction) (*TransactionResponse, error)
	CryptoTransfer(context.Context, *Transaction) (*TransactionResponse, error)
	CryptoDelete(context.Context, *Transaction) (*TransactionResponse, error)
	AddClaim(context.Context, *Transaction) (*TransactionResponse, error)
	DeleteClaim(context.Context, *Transaction) (*TransactionResponse, error)
	GetClaim(context.Context, *Query) (*Response, error)
	GetAccountRecords(context.Context, *Query) (*Response, error)
	CryptoGetBalance(context.Context, *Query) (*Response, error)
	GetAccountInfo(context.Context, *Query) (*Response, error)
	GetTransactionReceipts(context.Context, *Query) (*Response, error)
	GetTxRecordByTxID(context.Context, *Query) (*Response, error)
	GetByKey(context.Context, *Query) (*Response, error)
}

// RegisterCryptoServiceServer registers srv with s
func RegisterCryptoServiceServer(s *grpc.Server, srv CryptoServiceServer) {
	s.RegisterService(&cryptoServiceDesc, srv)
}

func cryptoTx(name string, call func(CryptoServiceServer, context.Context, *Transaction) (*TransactionResponse, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: transactionHandler("/proto.CryptoService/"+name, func(srv interface{}, ctx context.Context, in *Transaction) (*TransactionResponse, error) {
			return call(srv.(CryptoServiceServer), ctx, in)
		}),
	}
}

func cryptoQuery(name string, call func(CryptoServiceServer, context.Context, *Query) (*Response, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: queryHandler("/proto.CryptoService/"+name, func(srv interface{}, ctx context.Context, in *Query) (*Response, error) {
			return call(srv.(CryptoServiceServer), ctx, in)
		}),
	}
}

var cryptoServiceDesc = grpc.ServiceDesc{
	ServiceName: "proto.CryptoService",
	HandlerType: (*CryptoServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		cryptoTx("createAccount", CryptoServiceServer.CreateAccount),
		cryptoTx("updateAccount", CryptoServiceServer.UpdateAccount),
		cryptoTx("cryptoTransfer", CryptoServiceServer.CryptoTransfer),
		cryptoTx("cryptoDelete", CryptoServiceServer.CryptoDelete),
		cryptoTx("addClaim", CryptoServiceServer.AddClaim),
		cryptoTx("deleteClaim", CryptoServiceServer.DeleteClaim),
		cryptoQuery("getClaim", CryptoServiceServer.GetClaim),
		cryptoQuery("getAccountRecords", CryptoServiceServer.GetAccountRecords),
		cryptoQuery("cryptoGetBalance", CryptoServiceServer.CryptoGetBalance),
		cryptoQuery("getAccountInfo", CryptoServiceServer.GetAccountInfo),
		cryptoQuery("getTransactionReceipts", CryptoServiceServer.GetTransactionReceipts),
		cryptoQuery("getTxRecordByTxID", CryptoServiceServer.GetTxRecordByTxID),
		cryptoQuery("getByKey", CryptoServiceServer.GetByKey),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "CryptoService.proto",
}

// FileServiceClient is the client API for the file service.
type FileServiceClient interface {
	CreateFile(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error)
	UpdateFile(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error)
	DeleteFile(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error)
	AppendContent(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error)
	AdminDelete(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error)
	AdminUndelete(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error)
	GetFileContent(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error)
	GetFileInfo(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error)
}

type fileServiceClient struct {
	cc *grpc.ClientConn
}

// NewFileServiceClient returns a FileServiceClient bound to cc
func NewFileServiceClient(cc *grpc.ClientConn) FileServiceClient {
	return &fileServiceClient{cc}
}

func (c *fileServiceClient) CreateFile(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invokeTransaction(ctx, c.cc, "/proto.FileService/createFile", in, opts...)
}

func (c *fileServiceClient) UpdateFile(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invokeTransaction(ctx, c.cc, "/proto.FileService/updateFile", in, opts...)
}

func (c *fileServiceClient) DeleteFile(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invokeTransaction(ctx, c.cc, "/proto.FileService/deleteFile", in, opts...)
}

func (c *fileServiceClient) AppendContent(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invokeTransaction(ctx, c.cc, "/proto.FileService/appendContent", in, opts...)
}

func (c *fileServiceClient) AdminDelete(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invokeTransaction(ctx, c.cc, "/proto.FileService/adminDelete", in, opts...)
}

func (c *fileServiceClient) AdminUndelete(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invokeTransaction(ctx, c.cc, "/proto.FileService/adminUndelete", in, opts...)
}

func (c *fileServiceClient) GetFileContent(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error) {
	return invokeQuery(ctx, c.cc, "/proto.FileService/getFileContent", in, opts...)
}

func (c *fileServiceClient) GetFileInfo(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error) {
	return invokeQuery(ctx, c.cc, "/proto.FileService/getFileInfo", in, opts...)
}

// FileServiceServer is the server API for the file service.
type FileServiceServer interface {
	CreateFile(context.Context, *Transaction) (*TransactionResponse, error)
	UpdateFile(context.Context, *Transaction) (*TransactionResponse, error)
	DeleteFile(context.Context, *Transaction) (*TransactionResponse, error)
	AppendContent(context.Context, *Transaction) (*TransactionResponse, error)
	AdminDelete(context.Context, *Transaction) (*TransactionResponse, error)
	AdminUndelete(context.Context, *Transaction) (*TransactionResponse, error)
	GetFileContent(context.Context, *Query) (*Response, error)
	GetFileInfo(context.Context, *Query) (*Response, error)
}

// RegisterFileServiceServer registers srv with s
func RegisterFileServiceServer(s *grpc.Server, srv FileServiceServer) {
	s.RegisterService(&fileServiceDesc, srv)
}

func fileTx(name string, call func(FileServiceServer, context.Context, *Transaction) (*TransactionResponse, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: transactionHandler("/proto.FileService/"+name, func(srv interface{}, ctx context.Context, in *Transaction) (*TransactionResponse, error) {
			return call(srv.(FileServiceServer), ctx, in)
		}),
	}
}

func fileQuery(name string, call func(FileServiceServer, context.Context, *Query) (*Response, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: queryHandler("/proto.FileService/"+name, func(srv interface{}, ctx context.Context, in *Query) (*Response, error) {
			return call(srv.(FileServiceServer), ctx, in)
		}),
	}
}

var fileServiceDesc = grpc.ServiceDesc{
	ServiceName: "proto.FileService",
	HandlerType: (*FileServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		fileTx("createFile", FileServiceServer.CreateFile),
		fileTx("updateFile", FileServiceServer.UpdateFile),
		fileTx("deleteFile", FileServiceServer.DeleteFile),
		fileTx("appendContent", FileServiceServer.AppendContent),
		fileTx("adminDelete", FileServiceServer.AdminDelete),
		fileTx("adminUndelete", FileServiceServer.AdminUndelete),
		fileQuery("getFileContent", FileServiceServer.GetFileContent),
		fileQuery("getFileInfo", FileServiceServer.GetFileInfo),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "FileService.proto",
}

// SmartContractServiceClient is the client API for the contract service.
type SmartContractServiceClient interface {
	CreateContract(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error)
	UpdateContract(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error)
	ContractCallMethod(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error)
	DeleteContract(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error)
	AdminDelete(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error)
	AdminUndelete(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error)
	GetContractInfo(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error)
	ContractCallLocalMethod(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error)
	ContractGetBytecode(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error)
	GetTxRecordByContractID(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error)
}

type smartContractServiceClient struct {
	cc *grpc.ClientConn
}

// NewSmartContractServiceClient returns a SmartContractServiceClient bound to cc
func NewSmartContractServiceClient(cc *grpc.ClientConn) SmartContractServiceClient {
	return &smartContractServiceClient{cc}
}

func (c *smartContractServiceClient) CreateContract(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invokeTransaction(ctx, c.cc, "/proto.SmartContractService/createContract", in, opts...)
}

func (c *smartContractServiceClient) UpdateContract(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invokeTransaction(ctx, c.cc, "/proto.SmartContractService/updateContract", in, opts...)
}

func (c *smartContractServiceClient) ContractCallMethod(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invokeTransaction(ctx, c.cc, "/proto.SmartContractService/contractCallMethod", in, opts...)
}

func (c *smartContractServiceClient) DeleteContract(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invokeTransaction(ctx, c.cc, "/proto.SmartContractService/deleteContract", in, opts...)
}

func (c *smartContractServiceClient) AdminDelete(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invokeTransaction(ctx, c.cc, "/proto.SmartContractService/adminDelete", in, opts...)
}

func (c *smartContractServiceClient) AdminUndelete(ctx context.Context, in *Transaction, opts ...grpc.CallOption) (*TransactionResponse, error) {
	return invokeTransaction(ctx, c.cc, "/proto.SmartContractService/adminUndelete", in, opts...)
}

func (c *smartContractServiceClient) GetContractInfo(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error) {
	return invokeQuery(ctx, c.cc, "/proto.SmartContractService/getContractInfo", in, opts...)
}

func (c *smartContractServiceClient) ContractCallLocalMethod(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error) {
	return invokeQuery(ctx, c.cc, "/proto.SmartContractService/contractCallLocalMethod", in, opts...)
}

func (c *smartContractServiceClient) ContractGetBytecode(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error) {
	return invokeQuery(ctx, c.cc, "/proto.SmartContractService/ContractGetBytecode", in, opts...)
}

func (c *smartContractServiceClient) GetTxRecordByContractID(ctx context.Context, in *Query, opts ...grpc.CallOption) (*Response, error) {
	return invokeQuery(ctx, c.cc, "/proto.SmartContractService/getTxRecordByContractID", in, opts...)
}

// SmartContractServiceServer is the server API for the contract service.
type SmartContractServiceServer interface {
	CreateContract(context.Context, *Transaction) (*TransactionResponse, error)
	UpdateContract(context.Context, *Transaction) (*TransactionResponse, error)
	ContractCallMethod(context.Context, *Transaction) (*TransactionResponse, error)
	DeleteContract(context.Context, *Transaction) (*TransactionResponse, error)
	AdminDelete(context.Context, *Transaction) (*TransactionResponse, error)
	AdminUndelete(context.Context, *Transaction) (*TransactionResponse, error)
	GetContractInfo(context.Context, *Query) (*Response, error)
	ContractCallLocalMethod(context.Context, *Query) (*Response, error)
	ContractGetBytecode(context.Context, *Query) (*Response, error)
	GetTxRecordByContractID(context.Context, *Query) (*Response, error)
}

// RegisterSmartContractServiceServer registers srv with s
func RegisterSmartContractServiceServer(s *grpc.Server, srv SmartContractServiceServer) {
	s.RegisterService(&smartContractServiceDesc, srv)
}

func contractTx(name string, call func(SmartContractServiceServer, context.Context, *Transaction) (*TransactionResponse, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: transactionHandler("/proto.SmartContractService/"+name, func(srv interface{}, ctx context.Context, in *Transaction) (*TransactionResponse, error) {
			return call(srv.(SmartContractServiceServer), ctx, in)
		}),
	}
}

func contractQuery(name string, call func(SmartContractServiceServer, context.Context, *Query) (*Response, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: queryHandler("/proto.SmartContractService/"+name, func(srv interface{}, ctx context.Context, in *Query) (*Response, error) {
			return call(srv.(SmartContractServiceServer), ctx, in)
		}),
	}
}

var smartContractServiceDesc = grpc.ServiceDesc{
	ServiceName: "proto.SmartContractService",
	HandlerType: (*SmartContractServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		contractTx("createContract", SmartContractServiceServer.CreateContract),
		contractTx("updateContract", SmartContractServiceServer.UpdateContract),
		contractTx("contractCallMethod", SmartContractServiceServer.ContractCallMethod),
		contractTx("deleteContract", SmartContractServiceServer.DeleteContract),
		contractTx("adminDelete", SmartContractServiceServer.AdminDelete),
		contractTx("adminUndelete", SmartContractServiceServer.AdminUndelete),
		contractQuery("getContractInfo", SmartContractServiceServer.GetContractInfo),
		contractQuery("contractCallLocalMethod", SmartContractServiceServer.ContractCallLocalMethod),
		contractQuery("ContractGetBytecode", SmartContractServiceServer.ContractGetBytecode),
		contractQuery("getTxRecordByContractID", SmartContractServiceServer.GetTxRecordByContractID),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "SmartContractService.proto",
}
