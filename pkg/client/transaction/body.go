/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package transaction

import (
	"math"
	"reflect"
	"time"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/providers/hedera"
	"github.com/hashgraph/hedera-sdk-go/pkg/hapi"
	"github.com/hashgraph/hedera-sdk-go/pkg/hedera/id"
)

const (
	// DefaultAutoRenewPeriod is applied to new accounts and contracts
	DefaultAutoRenewPeriod = 2592000 * time.Second

	// DefaultRecordThreshold is the send and receive record threshold of new accounts
	DefaultRecordThreshold = uint64(math.MaxInt64)

	// DefaultAdminDeleteDelay is the time after which an admin deleted entity expires
	DefaultAdminDeleteDelay = time.Minute
)

// Body is the operation payload of a transaction. The set of bodies is closed.
type Body interface {
	Kind() Kind
	// build sets the operation of data. operator is the paying account of the
	// transaction being frozen.
	build(data *hapi.TransactionBody, operator id.AccountID) error
}

// snapshot returns a deep copy of body so that later changes by the caller,
// including edits to its slices, do not reach the builder. Keys are shared.
func snapshot(body Body) (Body, error) {
	if body == nil {
		return nil, status.NewMissingField("body")
	}
	v := reflect.ValueOf(body)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return nil, errors.Errorf("body %s must be a non-nil pointer", body.Kind())
	}
	dst := reflect.New(v.Elem().Type()).Interface()
	if err := copier.CopyWithOption(dst, body, copier.Option{DeepCopy: true}); err != nil {
		return nil, errors.Wrapf(err, "copy of %s body failed", body.Kind())
	}
	return dst.(Body), nil
}

func keyToProto(k hedera.PublicKey) *hapi.Key {
	return &hapi.Key{Ed25519: k.Bytes()}
}

func keyListToProto(keys []hedera.PublicKey) *hapi.KeyList {
	list := &hapi.KeyList{}
	for _, k := range keys {
		if k != nil {
			list.Keys = append(list.Keys, keyToProto(k))
		}
	}
	return list
}

func optionalAccount(a *id.AccountID) *hapi.AccountID {
	if a == nil {
		return nil
	}
	return a.ToProto()
}

func optionalTimestamp(t *id.Timestamp) *hapi.Timestamp {
	if t == nil {
		return nil
	}
	return t.ToProto()
}

func optionalDuration(d time.Duration) *hapi.Duration {
	if d == 0 {
		return nil
	}
	return id.DurationToProto(d)
}

// CryptoCreateAccount creates an account owned by Key. Zero thresholds and
// auto-renew period are replaced by their defaults.
type CryptoCreateAccount struct {
	Key                     hedera.PublicKey
	InitialBalance          uint64
	Proxy                   *id.AccountID
	ProxyFraction           int32
	MaxReceiveProxyFraction int32
	SendRecordThreshold     uint64
	ReceiveRecordThreshold  uint64
	ReceiverSigRequired     bool
	AutoRenewPeriod         time.Duration
	Shard                   int64
	Realm                   int64
}

// Kind returns CryptoCreateAccountKind
func (b *CryptoCreateAccount) Kind() Kind { return CryptoCreateAccountKind }

func (b *CryptoCreateAccount) build(data *hapi.TransactionBody, operator id.AccountID) error {
	if b.Key == nil {
		return status.NewMissingField("key")
	}

	body := &hapi.CryptoCreateTransactionBody{
		Key:                     keyToProto(b.Key),
		InitialBalance:          b.InitialBalance,
		ProxyAccountID:          optionalAccount(b.Proxy),
		ProxyFraction:           b.ProxyFraction,
		MaxReceiveProxyFraction: b.MaxReceiveProxyFraction,
		SendRecordThreshold:     b.SendRecordThreshold,
		ReceiveRecordThreshold:  b.ReceiveRecordThreshold,
		ReceiverSigRequired:     b.ReceiverSigRequired,
		AutoRenewPeriod:         id.DurationToProto(b.AutoRenewPeriod),
		ShardID:                 &hapi.ShardID{ShardNum: b.Shard},
		RealmID:                 &hapi.RealmID{ShardNum: b.Shard, RealmNum: b.Realm},
	}
	if body.SendRecordThreshold == 0 {
		body.SendRecordThreshold = DefaultRecordThreshold
	}
	if body.ReceiveRecordThreshold == 0 {
		body.ReceiveRecordThreshold = DefaultRecordThreshold
	}
	if b.AutoRenewPeriod == 0 {
		body.AutoRenewPeriod = id.DurationToProto(DefaultAutoRenewPeriod)
	}

	data.CryptoCreateAccount = body
	return nil
}

// Transfer moves Amount tinybars into Account. Negative amounts debit it.
type Transfer struct {
	Account id.AccountID
	Amount  int64
}

// CryptoTransfer moves tinybars between accounts. The amounts must sum to zero.
type CryptoTransfer struct {
	Transfers []Transfer
}

// AddTransfer appends a transfer and returns b
func (b *CryptoTransfer) AddTransfer(account id.AccountID, amount int64) *CryptoTransfer {
	b.Transfers = append(b.Transfers, Transfer{Account: account, Amount: amount})
	return b
}

// Kind returns CryptoTransferKind
func (b *CryptoTransfer) Kind() Kind { return CryptoTransferKind }

func (b *CryptoTransfer) build(data *hapi.TransactionBody, operator id.AccountID) error {
	if len(b.Transfers) == 0 {
		return status.NewMissingField("transfers")
	}

	list := &hapi.TransferList{}
	for _, t := range b.Transfers {
		list.AccountAmounts = append(list.AccountAmounts, &hapi.AccountAmount{AccountID: t.Account.ToProto(), Amount: t.Amount})
	}
	data.CryptoTransfer = &hapi.CryptoTransferTransactionBody{Transfers: list}
	return nil
}

// CryptoUpdate changes the settings of Account. Zero fields are left unchanged.
type CryptoUpdate struct {
	Account                id.AccountID
	Key                    hedera.PublicKey
	Proxy                  *id.AccountID
	ProxyFraction          int32
	SendRecordThreshold    uint64
	ReceiveRecordThreshold uint64
	AutoRenewPeriod        time.Duration
	ExpirationTime         *id.Timestamp
}

// Kind returns CryptoUpdateKind
func (b *CryptoUpdate) Kind() Kind { return CryptoUpdateKind }

func (b *CryptoUpdate) build(data *hapi.TransactionBody, operator id.AccountID) error {
	if b.Account.IsZero() {
		return status.NewMissingField("account")
	}

	body := &hapi.CryptoUpdateTransactionBody{
		AccountIDToUpdate:      b.Account.ToProto(),
		ProxyAccountID:         optionalAccount(b.Proxy),
		ProxyFraction:          b.ProxyFraction,
		SendRecordThreshold:    b.SendRecordThreshold,
		ReceiveRecordThreshold: b.ReceiveRecordThreshold,
		AutoRenewPeriod:        optionalDuration(b.AutoRenewPeriod),
		ExpirationTime:         optionalTimestamp(b.ExpirationTime),
	}
	if b.Key != nil {
		body.Key = keyToProto(b.Key)
	}

	data.CryptoUpdateAccount = body
	return nil
}

// CryptoDelete deletes Account and moves its balance to TransferAccount,
// or to the operator when TransferAccount is nil
type CryptoDelete struct {
	Account         id.AccountID
	TransferAccount *id.AccountID
}

// Kind returns CryptoDeleteKind
func (b *CryptoDelete) Kind() Kind { return CryptoDeleteKind }

func (b *CryptoDelete) build(data *hapi.TransactionBody, operator id.AccountID) error {
	if b.Account.IsZero() {
		return status.NewMissingField("account")
	}

	transfer := operator
	if b.TransferAccount != nil {
		transfer = *b.TransferAccount
	}
	data.CryptoDelete = &hapi.CryptoDeleteTransactionBody{
		DeleteAccountID:   b.Account.ToProto(),
		TransferAccountID: transfer.ToProto(),
	}
	return nil
}

// CryptoAddClaim attaches a claim hash to Account, to be deleted by any of Keys
type CryptoAddClaim struct {
	Account id.AccountID
	Hash    []byte
	Keys    []hedera.PublicKey
}

// Kind returns CryptoAddClaimKind
func (b *CryptoAddClaim) Kind() Kind { return CryptoAddClaimKind }

func (b *CryptoAddClaim) build(data *hapi.TransactionBody, operator id.AccountID) error {
	if b.Account.IsZero() {
		return status.NewMissingField("account")
	}
	if len(b.Hash) == 0 {
		return status.NewMissingField("hash")
	}

	data.CryptoAddClaim = &hapi.CryptoAddClaimTransactionBody{
		Claim: &hapi.Claim{
			AccountID: b.Account.ToProto(),
			Hash:      b.Hash,
			Keys:      keyListToProto(b.Keys),
		},
	}
	return nil
}

// CryptoDeleteClaim removes the claim with Hash from Account
type CryptoDeleteClaim struct {
	Account id.AccountID
	Hash    []byte
}

// Kind returns CryptoDeleteClaimKind
func (b *CryptoDeleteClaim) Kind() Kind { return CryptoDeleteClaimKind }

func (b *CryptoDeleteClaim) build(data *hapi.TransactionBody, operator id.AccountID) error {
	if b.Account.IsZero() {
		return status.NewMissingField("account")
	}
	if len(b.Hash) == 0 {
		return status.NewMissingField("hash")
	}

	data.CryptoDeleteClaim = &hapi.CryptoDeleteClaimTransactionBody{
		AccountIDToDeleteFrom: b.Account.ToProto(),
		HashToDelete:          b.Hash,
	}
	return nil
}

// FileCreate creates a file in shard 0, realm 0 owned by Keys
type FileCreate struct {
	Keys           []hedera.PublicKey
	Contents       []byte
	ExpirationTime *id.Timestamp
}

// Kind returns FileCreateKind
func (b *FileCreate) Kind() Kind { return FileCreateKind }

func (b *FileCreate) build(data *hapi.TransactionBody, operator id.AccountID) error {
	keys := keyListToProto(b.Keys)
	if len(keys.Keys) == 0 {
		return status.NewMissingField("key")
	}

	data.FileCreate = &hapi.FileCreateTransactionBody{
		ExpirationTime: optionalTimestamp(b.ExpirationTime),
		Keys:           keys,
		Contents:       b.Contents,
		ShardID:        &hapi.ShardID{},
		RealmID:        &hapi.RealmID{},
	}
	return nil
}

// FileAppend appends Contents to File
type FileAppend struct {
	File     id.FileID
	Contents []byte
}

// Kind returns FileAppendKind
func (b *FileAppend) Kind() Kind { return FileAppendKind }

func (b *FileAppend) build(data *hapi.TransactionBody, operator id.AccountID) error {
	if b.File == (id.FileID{}) {
		return status.NewMissingField("file")
	}

	data.FileAppend = &hapi.FileAppendTransactionBody{
		FileID:   b.File.ToProto(),
		Contents: b.Contents,
	}
	return nil
}

// FileUpdate replaces the settings of File. Nil or empty fields are left unchanged.
type FileUpdate struct {
	File           id.FileID
	Keys           []hedera.PublicKey
	Contents       []byte
	ExpirationTime *id.Timestamp
}

// Kind returns FileUpdateKind
func (b *FileUpdate) Kind() Kind { return FileUpdateKind }

func (b *FileUpdate) build(data *hapi.TransactionBody, operator id.AccountID) error {
	if b.File == (id.FileID{}) {
		return status.NewMissingField("file")
	}

	body := &hapi.FileUpdateTransactionBody{
		FileID:         b.File.ToProto(),
		ExpirationTime: optionalTimestamp(b.ExpirationTime),
		Contents:       b.Contents,
	}
	if len(b.Keys) > 0 {
		body.Keys = keyListToProto(b.Keys)
	}

	data.FileUpdate = body
	return nil
}

// FileDelete deletes File
type FileDelete struct {
	File id.FileID
}

// Kind returns FileDeleteKind
func (b *FileDelete) Kind() Kind { return FileDeleteKind }

func (b *FileDelete) build(data *hapi.TransactionBody, operator id.AccountID) error {
	if b.File == (id.FileID{}) {
		return status.NewMissingField("file")
	}

	data.FileDelete = &hapi.FileDeleteTransactionBody{FileID: b.File.ToProto()}
	return nil
}

// ContractCreate instantiates the contract whose bytecode is stored in File
type ContractCreate struct {
	File                  id.FileID
	AdminKey              hedera.PublicKey
	Gas                   int64
	InitialBalance        int64
	Proxy                 *id.AccountID
	AutoRenewPeriod       time.Duration
	ConstructorParameters []byte
}

// Kind returns ContractCreateKind
func (b *ContractCreate) Kind() Kind { return ContractCreateKind }

func (b *ContractCreate) build(data *hapi.TransactionBody, operator id.AccountID) error {
	if b.File == (id.FileID{}) {
		return status.NewMissingField("file")
	}

	autoRenew := b.AutoRenewPeriod
	if autoRenew == 0 {
		autoRenew = DefaultAutoRenewPeriod
	}

	body := &hapi.ContractCreateTransactionBody{
		FileID:                b.File.ToProto(),
		Gas:                   b.Gas,
		InitialBalance:        b.InitialBalance,
		ProxyAccountID:        optionalAccount(b.Proxy),
		AutoRenewPeriod:       id.DurationToProto(autoRenew),
		ConstructorParameters: b.ConstructorParameters,
		ShardID:               &hapi.ShardID{},
		RealmID:               &hapi.RealmID{},
	}
	if b.AdminKey != nil {
		body.AdminKey = keyToProto(b.AdminKey)
	}

	data.ContractCreateInstance = body
	return nil
}

// ContractUpdate changes the settings of Contract. Zero fields are left unchanged.
type ContractUpdate struct {
	Contract        id.ContractID
	AdminKey        hedera.PublicKey
	Proxy           *id.AccountID
	AutoRenewPeriod time.Duration
	File            *id.FileID
	ExpirationTime  *id.Timestamp
}

// Kind returns ContractUpdateKind
func (b *ContractUpdate) Kind() Kind { return ContractUpdateKind }

func (b *ContractUpdate) build(data *hapi.TransactionBody, operator id.AccountID) error {
	if b.Contract == (id.ContractID{}) {
		return status.NewMissingField("contract")
	}

	body := &hapi.ContractUpdateTransactionBody{
		ContractID:      b.Contract.ToProto(),
		ExpirationTime:  optionalTimestamp(b.ExpirationTime),
		ProxyAccountID:  optionalAccount(b.Proxy),
		AutoRenewPeriod: optionalDuration(b.AutoRenewPeriod),
	}
	if b.AdminKey != nil {
		body.AdminKey = keyToProto(b.AdminKey)
	}
	if b.File != nil {
		body.FileID = b.File.ToProto()
	}

	data.ContractUpdateInstance = body
	return nil
}

// ContractCall calls a function of Contract. Parameters are the encoded
// function call.
type ContractCall struct {
	Contract   id.ContractID
	Gas        int64
	Amount     int64
	Parameters []byte
}

// Kind returns ContractCallKind
func (b *ContractCall) Kind() Kind { return ContractCallKind }

func (b *ContractCall) build(data *hapi.TransactionBody, operator id.AccountID) error {
	if b.Contract == (id.ContractID{}) {
		return status.NewMissingField("contract")
	}

	data.ContractCall = &hapi.ContractCallTransactionBody{
		ContractID:         b.Contract.ToProto(),
		Gas:                b.Gas,
		Amount:             b.Amount,
		FunctionParameters: b.Parameters,
	}
	return nil
}

// ContractDelete deletes Contract. Its balance goes to TransferContract,
// TransferAccount or, when neither is set, the operator.
type ContractDelete struct {
	Contract         id.ContractID
	TransferAccount  *id.AccountID
	TransferContract *id.ContractID
}

// Kind returns ContractDeleteKind
func (b *ContractDelete) Kind() Kind { return ContractDeleteKind }

func (b *ContractDelete) build(data *hapi.TransactionBody, operator id.AccountID) error {
	if b.Contract == (id.ContractID{}) {
		return status.NewMissingField("contract")
	}

	body := &hapi.ContractDeleteTransactionBody{ContractID: b.Contract.ToProto()}
	switch {
	case b.TransferContract != nil:
		body.TransferContractID = b.TransferContract.ToProto()
	case b.TransferAccount != nil:
		body.TransferAccountID = b.TransferAccount.ToProto()
	default:
		body.TransferAccountID = operator.ToProto()
	}

	data.ContractDeleteInstance = body
	return nil
}

// AdminDelete deletes a file or a contract with administrator privileges.
// Exactly one of File and Contract must be set.
type AdminDelete struct {
	File           *id.FileID
	Contract       *id.ContractID
	ExpirationTime id.Timestamp
}

// NewAdminFileDelete returns an admin delete of file expiring in one minute
func NewAdminFileDelete(file id.FileID) *AdminDelete {
	return &AdminDelete{File: &file, ExpirationTime: id.TimestampFromTime(time.Now().Add(DefaultAdminDeleteDelay))}
}

// NewAdminContractDelete returns an admin delete of contract expiring in one minute
func NewAdminContractDelete(contract id.ContractID) *AdminDelete {
	return &AdminDelete{Contract: &contract, ExpirationTime: id.TimestampFromTime(time.Now().Add(DefaultAdminDeleteDelay))}
}

// Kind returns AdminDeleteKind
func (b *AdminDelete) Kind() Kind { return AdminDeleteKind }

func (b *AdminDelete) build(data *hapi.TransactionBody, operator id.AccountID) error {
	fileID, contractID, err := adminTarget(b.File, b.Contract)
	if err != nil {
		return err
	}

	expiration := b.ExpirationTime
	if expiration == (id.Timestamp{}) {
		expiration = id.TimestampFromTime(time.Now().Add(DefaultAdminDeleteDelay))
	}

	data.AdminDelete = &hapi.AdminDeleteTransactionBody{
		FileID:         fileID,
		ContractID:     contractID,
		ExpirationTime: &hapi.TimestampSeconds{Seconds: expiration.Seconds},
	}
	return nil
}

// AdminRecover restores a file or a contract removed by AdminDelete.
// Exactly one of File and Contract must be set.
type AdminRecover struct {
	File     *id.FileID
	Contract *id.ContractID
}

// Kind returns AdminRecoverKind
func (b *AdminRecover) Kind() Kind { return AdminRecoverKind }

func (b *AdminRecover) build(data *hapi.TransactionBody, operator id.AccountID) error {
	fileID, contractID, err := adminTarget(b.File, b.Contract)
	if err != nil {
		return err
	}

	data.AdminUndelete = &hapi.AdminUndeleteTransactionBody{
		FileID:     fileID,
		ContractID: contractID,
	}
	return nil
}

func adminTarget(file *id.FileID, contract *id.ContractID) (*hapi.FileID, *hapi.ContractID, error) {
	switch {
	case file != nil && contract != nil:
		return nil, nil, errors.New("admin operations target either a file or a contract, not both")
	case file != nil:
		return file.ToProto(), nil, nil
	case contract != nil:
		return nil, contract.ToProto(), nil
	}
	return nil, nil, status.NewMissingField("file or contract")
}
