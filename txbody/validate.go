// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package txbody

import (
	"errors"
	"fmt"
	"math"
	"net"
	"strconv"

	"github.com/blinklabs-io/txdraft/primitive"
)

const (
	// Ledger limits on pool relay and metadata strings
	maxDnsNameSize     = 64
	maxMetadataUrlSize = 64
)

var (
	ErrZeroMint          = errors.New("mint amount must not be zero")
	ErrMintOverflow      = errors.New("mint amount cannot be negated")
	ErrZeroQuantity      = errors.New("asset quantity must be greater than zero")
	ErrInvalidMargin     = errors.New("invalid pool margin")
	ErrEmptyValidity     = errors.New("validity range is empty")
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidDatumType  = errors.New("invalid datum type")
	ErrInvalidMintType   = errors.New("invalid mint type")
	ErrInvalidLanguage   = errors.New("invalid language version")
	ErrInvalidScriptSize = errors.New("script size must be greater than zero")
)

// validator collects field errors while walking a transaction body.
type validator struct {
	errs []error
}

func (v *validator) add(path string, err error) {
	v.errs = append(v.errs, &FieldError{Path: path, Err: err})
}

func (v *validator) hash224(path string, value string) {
	if _, err := primitive.NewBlake2b224FromHex(value); err != nil {
		v.add(path, err)
	}
}

func (v *validator) hash256(path string, value string) {
	if _, err := primitive.NewBlake2b256FromHex(value); err != nil {
		v.add(path, err)
	}
}

func (v *validator) hex(path string, value string) {
	if _, err := primitive.DecodeHex(value); err != nil {
		v.add(path, err)
	}
}

func (v *validator) address(path string, value string) {
	if _, err := primitive.AddressBytes(value); err != nil {
		v.add(path, err)
	}
}

// Validate checks the shape of the transaction body: hashes and hex fields decode to
// the right size, amounts are in range, and variant fields are consistent. It does not
// check anything that needs ledger state. All problems are returned, joined, each as
// a *FieldError.
func (b *TransactionBody) Validate() error {
	v := &validator{}
	for i, input := range b.Inputs {
		v.txIn(indexPath("inputs", i), input)
	}
	for i, output := range b.Outputs {
		v.output(indexPath("outputs", i), output)
	}
	for i, collateral := range b.Collaterals {
		v.txIn(indexPath("collaterals", i), collateral)
	}
	for i, keyHash := range b.RequiredSignatures {
		v.hash224(indexPath("requiredSignatures", i), keyHash)
	}
	for i, refInput := range b.ReferenceInputs {
		v.hash256(joinPath(indexPath("referenceInputs", i), "txHash"), refInput.TxHash)
	}
	for i, withdrawal := range b.Withdrawals {
		v.withdrawal(indexPath("withdrawals", i), withdrawal)
	}
	for i, mint := range b.Mints {
		v.mint(indexPath("mints", i), mint)
	}
	if b.ChangeAddress != "" {
		v.address("changeAddress", b.ChangeAddress)
	}
	if b.ChangeDatum != nil {
		v.datum("changeDatum", *b.ChangeDatum)
	}
	for i, metadata := range b.Metadata {
		if _, err := strconv.ParseUint(metadata.Tag, 10, 64); err != nil {
			v.add(
				joinPath(indexPath("metadata", i), "tag"),
				fmt.Errorf("invalid metadata label %q", metadata.Tag),
			)
		}
	}
	validity := b.ValidityRange
	if validity.InvalidBefore != nil && validity.InvalidHereafter != nil &&
		*validity.InvalidBefore >= *validity.InvalidHereafter {
		v.add(
			"validityRange",
			fmt.Errorf(
				"%w: invalidBefore %d is not below invalidHereafter %d",
				ErrEmptyValidity,
				*validity.InvalidBefore,
				*validity.InvalidHereafter,
			),
		)
	}
	for i, cert := range b.Certificates {
		v.certificate(indexPath("certificates", i), cert)
	}
	return errors.Join(v.errs...)
}

func (v *validator) txIn(path string, input TxIn) {
	switch i := input.(type) {
	case PubKeyTxIn:
		v.txInParameter(joinPath(path, "txIn"), i.TxIn)
	case ScriptTxIn:
		v.txInParameter(joinPath(path, "txIn"), i.TxIn)
		paramPath := joinPath(path, "scriptTxIn")
		if i.ScriptSource != nil {
			v.scriptSource(joinPath(paramPath, "scriptSource"), i.ScriptSource)
		}
		switch d := i.DatumSource.(type) {
		case nil:
		case ProvidedDatumSource:
			v.hex(joinPath(paramPath, "datumSource.data"), d.Data)
		case InlineDatumSource:
			v.hash256(joinPath(paramPath, "datumSource.txHash"), d.TxHash)
		}
		if i.Redeemer != nil {
			v.hex(joinPath(paramPath, "redeemer.data"), i.Redeemer.Data)
		}
	case nil:
		v.add(path, fmt.Errorf("%w: input", ErrMissingField))
	}
}

func (v *validator) txInParameter(path string, param TxInParameter) {
	v.hash256(joinPath(path, "txHash"), param.TxHash)
	for i, asset := range param.Amount {
		v.asset(indexPath(joinPath(path, "amount"), i), asset)
	}
	if param.Address != "" {
		v.address(joinPath(path, "address"), param.Address)
	}
}

func (v *validator) scriptSource(path string, source ScriptSource) {
	switch s := source.(type) {
	case ProvidedScriptSource:
		v.providedScript(path, s)
	case InlineScriptSource:
		v.hash256(joinPath(path, "txHash"), s.TxHash)
		v.hash224(joinPath(path, "spendingScriptHash"), s.SpendingScriptHash)
		if !s.LanguageVersion.Valid() {
			v.add(joinPath(path, "languageVersion"), ErrInvalidLanguage)
		}
		if s.ScriptSize == 0 {
			v.add(joinPath(path, "scriptSize"), ErrInvalidScriptSize)
		}
	}
}

func (v *validator) providedScript(path string, s ProvidedScriptSource) {
	v.hex(joinPath(path, "scriptCbor"), s.ScriptCbor)
	if !s.LanguageVersion.Valid() {
		v.add(joinPath(path, "languageVersion"), ErrInvalidLanguage)
	}
}

func (v *validator) output(path string, output Output) {
	v.address(joinPath(path, "address"), output.Address)
	for i, asset := range output.Amount {
		v.asset(indexPath(joinPath(path, "amount"), i), asset)
	}
	if output.Datum != nil {
		v.datum(joinPath(path, "datum"), *output.Datum)
	}
	if output.ReferenceScript != nil {
		v.providedScript(joinPath(path, "referenceScript"), *output.ReferenceScript)
	}
}

func (v *validator) asset(path string, asset Asset) {
	unit, err := primitive.ParseUnit(asset.Unit)
	if err != nil {
		v.add(joinPath(path, "unit"), err)
		return
	}
	quantity, err := primitive.ParseQuantity(asset.Quantity)
	if err != nil {
		v.add(joinPath(path, "quantity"), err)
		return
	}
	if quantity == 0 && !unit.IsLovelace() {
		v.add(joinPath(path, "quantity"), ErrZeroQuantity)
	}
}

func (v *validator) datum(path string, datum Datum) {
	switch datum.Type {
	case DatumTypeHash:
		v.hash256(joinPath(path, "data"), datum.Data)
	case DatumTypeInline:
		v.hex(joinPath(path, "data"), datum.Data)
	default:
		v.add(joinPath(path, "type"), fmt.Errorf("%w %q", ErrInvalidDatumType, datum.Type))
	}
}

func (v *validator) withdrawal(path string, withdrawal Withdrawal) {
	switch w := withdrawal.(type) {
	case PubKeyWithdrawal:
		v.address(joinPath(path, "address"), w.Address)
	case PlutusScriptWithdrawal:
		v.address(joinPath(path, "address"), w.Address)
		if w.ScriptSource != nil {
			v.scriptSource(joinPath(path, "scriptSource"), w.ScriptSource)
		}
		if w.Redeemer != nil {
			v.hex(joinPath(path, "redeemer.data"), w.Redeemer.Data)
		}
	case nil:
		v.add(path, fmt.Errorf("%w: withdrawal", ErrMissingField))
	}
}

func (v *validator) mint(path string, mint MintItem) {
	if mint.Type != MintTypePlutus && mint.Type != MintTypeNative {
		v.add(joinPath(path, "type"), fmt.Errorf("%w %q", ErrInvalidMintType, mint.Type))
	}
	v.hash224(joinPath(path, "policyId"), mint.PolicyId)
	assetName, err := primitive.DecodeHex(mint.AssetName)
	if err != nil {
		v.add(joinPath(path, "assetName"), err)
	} else if len(assetName) > primitive.MaxAssetNameSize {
		v.add(
			joinPath(path, "assetName"),
			fmt.Errorf("asset name exceeds %d bytes", primitive.MaxAssetNameSize),
		)
	}
	switch mint.Amount {
	case 0:
		v.add(joinPath(path, "amount"), ErrZeroMint)
	case math.MinInt64:
		v.add(joinPath(path, "amount"), ErrMintOverflow)
	}
	if mint.Redeemer != nil {
		v.hex(joinPath(path, "redeemer.data"), mint.Redeemer.Data)
	}
	if mint.ScriptSource != nil {
		v.scriptSource(joinPath(path, "scriptSource"), mint.ScriptSource)
	}
}

func (v *validator) certificate(path string, cert Certificate) {
	switch c := cert.(type) {
	case RegisterPool:
		v.poolParams(joinPath(path, "poolParams"), c.PoolParams)
	case RegisterStake:
		v.hash224(joinPath(path, "stakeKeyHash"), c.StakeKeyHash)
	case DelegateStake:
		v.hash224(joinPath(path, "stakeKeyHash"), c.StakeKeyHash)
		if _, err := primitive.PoolIdFromString(c.PoolId); err != nil {
			v.add(joinPath(path, "poolId"), err)
		}
	case DeregisterStake:
		v.hash224(joinPath(path, "stakeKeyHash"), c.StakeKeyHash)
	case RetirePool:
		if _, err := primitive.PoolIdFromString(c.PoolId); err != nil {
			v.add(joinPath(path, "poolId"), err)
		}
	case nil:
		v.add(path, fmt.Errorf("%w: certificate", ErrMissingField))
	}
}

func (v *validator) poolParams(path string, params PoolParams) {
	v.hash256(joinPath(path, "vrfKeyHash"), params.VrfKeyHash)
	v.hash224(joinPath(path, "operator"), params.Operator)
	if _, err := primitive.ParseBigAmount(params.Pledge); err != nil {
		v.add(joinPath(path, "pledge"), err)
	}
	if _, err := primitive.ParseBigAmount(params.Cost); err != nil {
		v.add(joinPath(path, "cost"), err)
	}
	numerator, denominator := params.Margin[0], params.Margin[1]
	if denominator == 0 || numerator > denominator {
		v.add(
			joinPath(path, "margin"),
			fmt.Errorf("%w: %d/%d", ErrInvalidMargin, numerator, denominator),
		)
	}
	for i, relay := range params.Relays {
		v.relay(indexPath(joinPath(path, "relays"), i), relay)
	}
	for i, owner := range params.Owners {
		v.hash224(indexPath(joinPath(path, "owners"), i), owner)
	}
	v.address(joinPath(path, "rewardAddress"), params.RewardAddress)
	if params.Metadata != nil {
		if len(params.Metadata.Url) > maxMetadataUrlSize {
			v.add(
				joinPath(path, "metadata.url"),
				fmt.Errorf("URL exceeds %d bytes", maxMetadataUrlSize),
			)
		}
		v.hash256(joinPath(path, "metadata.hash"), params.Metadata.Hash)
	}
}

func (v *validator) relay(path string, relay Relay) {
	switch r := relay.(type) {
	case SingleHostAddr:
		if r.Ipv4 != nil {
			if ip := net.ParseIP(*r.Ipv4); ip == nil || ip.To4() == nil {
				v.add(joinPath(path, "ipv4"), fmt.Errorf("invalid IPv4 address %q", *r.Ipv4))
			}
		}
		if r.Ipv6 != nil {
			if ip := net.ParseIP(*r.Ipv6); ip == nil || ip.To4() != nil {
				v.add(joinPath(path, "ipv6"), fmt.Errorf("invalid IPv6 address %q", *r.Ipv6))
			}
		}
	case SingleHostName:
		v.dnsName(joinPath(path, "domainName"), r.DomainName)
	case MultiHostName:
		v.dnsName(joinPath(path, "domainName"), r.DomainName)
	case nil:
		v.add(path, fmt.Errorf("%w: relay", ErrMissingField))
	}
}

func (v *validator) dnsName(path string, name string) {
	if name == "" {
		v.add(path, fmt.Errorf("%w: domain name", ErrMissingField))
	} else if len(name) > maxDnsNameSize {
		v.add(path, fmt.Errorf("domain name exceeds %d bytes", maxDnsNameSize))
	}
}
