/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package txn assembles signed transaction envelopes and dispatches
// transactions and queries to the node service that owns them.
package txn

import (
	reqContext "context"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/hedera"
	"github.com/hashgraph/hedera-sdk-go/pkg/hapi"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/id"
)

type transactionRPC func(ctx reqContext.Context, in *hapi.Transaction, opts ...grpc.CallOption) (*hapi.TransactionResponse, error)

// Send submits tx to the service RPC matching its operation and returns an
// error unless the node admitted it. A rejected transaction yields a
// PrecheckStatus error; a failed call yields a transport error.
func Send(reqCtx reqContext.Context, services hedera.Services, tx *hapi.Transaction, opts ...grpc.CallOption) (*hapi.TransactionResponse, error) {
	body := tx.GetBody()
	rpc, err := transactionMethod(services, body)
	if err != nil {
		return nil, err
	}

	node := id.AccountIDFromProto(body.GetNodeAccountID()).String()
	logger.Debugf("sending %s transaction to node %s", body.DataCase(), node)

	resp, err := rpc(reqCtx, tx, opts...)
	if err != nil {
		return nil, TransportError(err)
	}

	if err := CheckPrecheck(resp.GetNodeTransactionPrecheckCode(), node); err != nil {
		logger.Warnf("transaction %s rejected: %s", body.DataCase(), err)
		return resp, err
	}
	return resp, nil
}

func transactionMethod(services hedera.Services, body *hapi.TransactionBody) (transactionRPC, error) {
	if n := body.DataFieldCount(); n > 1 {
		return nil, errors.Errorf("transaction body carries %d operations, expected one", n)
	}

	switch body.DataCase() {
	case hapi.TransactionBody_CRYPTO_CREATE_ACCOUNT:
		return services.CryptoService().CreateAccount, nil
	case hapi.TransactionBody_CRYPTO_UPDATE_ACCOUNT:
		return services.CryptoService().UpdateAccount, nil
	case hapi.TransactionBody_CRYPTO_TRANSFER:
		return services.CryptoService().CryptoTransfer, nil
	case hapi.TransactionBody_CRYPTO_DELETE:
		return services.CryptoService().CryptoDelete, nil
	case hapi.TransactionBody_CRYPTO_ADD_CLAIM:
		return services.CryptoService().AddClaim, nil
	case hapi.TransactionBody_CRYPTO_DELETE_CLAIM:
		return services.CryptoService().DeleteClaim, nil
	case hapi.TransactionBody_FILE_CREATE:
		return services.FileService().CreateFile, nil
	case hapi.TransactionBody_FILE_APPEND:
		return services.FileService().AppendContent, nil
	case hapi.TransactionBody_FILE_UPDATE:
		return services.FileService().UpdateFile, nil
	case hapi.TransactionBody_FILE_DELETE:
		return services.FileService().DeleteFile, nil
	case hapi.TransactionBody_CONTRACT_CREATE_INSTANCE:
		return services.SmartContractService().CreateContract, nil
	case hapi.TransactionBody_CONTRACT_UPDATE_INSTANCE:
		return services.SmartContractService().UpdateContract, nil
	case hapi.TransactionBody_CONTRACT_CALL:
		return services.SmartContractService().ContractCallMethod, nil
	case hapi.TransactionBody_CONTRACT_DELETE_INSTANCE:
		return services.SmartContractService().DeleteContract, nil
	case hapi.TransactionBody_ADMIN_DELETE:
		if body.AdminDelete.ContractID != nil {
			return services.SmartContractService().AdminDelete, nil
		}
		return services.FileService().AdminDelete, nil
	case hapi.TransactionBody_ADMIN_UNDELETE:
		if body.AdminUndelete.ContractID != nil {
			return services.SmartContractService().AdminUndelete, nil
		}
		return services.FileService().AdminUndelete, nil
	}
	return nil, errors.Errorf("no service accepts transaction body %s", body.DataCase())
}

// CheckPrecheck returns nil for OK and a PrecheckStatus error otherwise
func CheckPrecheck(code hapi.NodeTransactionPrecheckCode, node string) error {
	if code == hapi.NodeTransactionPrecheckCode_OK {
		return nil
	}
	return status.NewFromPrecheck(code, node)
}

// TransportError converts a failed gRPC call into a transport status
func TransportError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	if s, ok := grpcstatus.FromError(errors.Cause(err)); ok {
		return status.NewFromGRPCStatus(s)
	}
	return status.New(status.ClientStatus, status.ConnectionFailed.ToInt32(), err.Error(), nil)
}
