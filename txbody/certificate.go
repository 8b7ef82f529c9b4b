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
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net"

	"github.com/blinklabs-io/txdraft/primitive"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

const (
	CertificateTypeRegisterPool    = "RegisterPool"
	CertificateTypeRegisterStake   = "RegisterStake"
	CertificateTypeDelegateStake   = "DelegateStake"
	CertificateTypeDeregisterStake = "DeregisterStake"
	CertificateTypeRetirePool      = "RetirePool"
)

// Certificate is one of RegisterPool, RegisterStake, DelegateStake, DeregisterStake
// or RetirePool
type Certificate interface {
	isCertificate()
	Utxorpc() (*utxorpc.Certificate, error)
}

type RegisterPool struct {
	PoolParams PoolParams `json:"poolParams"`
}

func (RegisterPool) isCertificate() {}

func (c RegisterPool) Utxorpc() (*utxorpc.Certificate, error) {
	poolReg, err := c.PoolParams.Utxorpc()
	if err != nil {
		return nil, err
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_PoolRegistration{
			PoolRegistration: poolReg,
		},
	}, nil
}

func (c RegisterPool) MarshalJSON() ([]byte, error) {
	tmp := struct {
		Type       string     `json:"type"`
		PoolParams PoolParams `json:"poolParams"`
	}{
		Type:       CertificateTypeRegisterPool,
		PoolParams: c.PoolParams,
	}
	return json.Marshal(tmp)
}

type RegisterStake struct {
	StakeKeyHash string `json:"stakeKeyHash"`
}

func (RegisterStake) isCertificate() {}

func (c RegisterStake) Utxorpc() (*utxorpc.Certificate, error) {
	stakeCred, err := stakeCredentialUtxorpc(c.StakeKeyHash)
	if err != nil {
		return nil, err
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_StakeRegistration{
			StakeRegistration: stakeCred,
		},
	}, nil
}

func (c RegisterStake) MarshalJSON() ([]byte, error) {
	tmp := struct {
		Type         string `json:"type"`
		StakeKeyHash string `json:"stakeKeyHash"`
	}{
		Type:         CertificateTypeRegisterStake,
		StakeKeyHash: c.StakeKeyHash,
	}
	return json.Marshal(tmp)
}

type DelegateStake struct {
	StakeKeyHash string `json:"stakeKeyHash"`
	// Pool id as bech32 ("pool1...") or hex
	PoolId string `json:"poolId"`
}

func (DelegateStake) isCertificate() {}

func (c DelegateStake) Utxorpc() (*utxorpc.Certificate, error) {
	stakeCred, err := stakeCredentialUtxorpc(c.StakeKeyHash)
	if err != nil {
		return nil, err
	}
	poolKeyHash, err := primitive.PoolIdFromString(c.PoolId)
	if err != nil {
		return nil, fmt.Errorf("invalid pool id: %w", err)
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_StakeDelegation{
			StakeDelegation: &utxorpc.StakeDelegationCert{
				StakeCredential: stakeCred,
				PoolKeyhash:     poolKeyHash.Bytes(),
			},
		},
	}, nil
}

func (c DelegateStake) MarshalJSON() ([]byte, error) {
	tmp := struct {
		Type         string `json:"type"`
		StakeKeyHash string `json:"stakeKeyHash"`
		PoolId       string `json:"poolId"`
	}{
		Type:         CertificateTypeDelegateStake,
		StakeKeyHash: c.StakeKeyHash,
		PoolId:       c.PoolId,
	}
	return json.Marshal(tmp)
}

type DeregisterStake struct {
	StakeKeyHash string `json:"stakeKeyHash"`
}

func (DeregisterStake) isCertificate() {}

func (c DeregisterStake) Utxorpc() (*utxorpc.Certificate, error) {
	stakeCred, err := stakeCredentialUtxorpc(c.StakeKeyHash)
	if err != nil {
		return nil, err
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_StakeDeregistration{
			StakeDeregistration: stakeCred,
		},
	}, nil
}

func (c DeregisterStake) MarshalJSON() ([]byte, error) {
	tmp := struct {
		Type         string `json:"type"`
		StakeKeyHash string `json:"stakeKeyHash"`
	}{
		Type:         CertificateTypeDeregisterStake,
		StakeKeyHash: c.StakeKeyHash,
	}
	return json.Marshal(tmp)
}

type RetirePool struct {
	PoolId string `json:"poolId"`
	Epoch  uint64 `json:"epoch"`
}

func (RetirePool) isCertificate() {}

func (c RetirePool) Utxorpc() (*utxorpc.Certificate, error) {
	poolKeyHash, err := primitive.PoolIdFromString(c.PoolId)
	if err != nil {
		return nil, fmt.Errorf("invalid pool id: %w", err)
	}
	return &utxorpc.Certificate{
		Certificate: &utxorpc.Certificate_PoolRetirement{
			PoolRetirement: &utxorpc.PoolRetirementCert{
				PoolKeyhash: poolKeyHash.Bytes(),
				Epoch:       c.Epoch,
			},
		},
	}, nil
}

func (c RetirePool) MarshalJSON() ([]byte, error) {
	tmp := struct {
		Type   string `json:"type"`
		PoolId string `json:"poolId"`
		Epoch  uint64 `json:"epoch"`
	}{
		Type:   CertificateTypeRetirePool,
		PoolId: c.PoolId,
		Epoch:  c.Epoch,
	}
	return json.Marshal(tmp)
}

// UnmarshalCertificate decodes a Certificate from its tagged JSON form
func UnmarshalCertificate(data []byte) (Certificate, error) {
	return decodeCertificate(data, "")
}

func decodeCertificate(data json.RawMessage, path string) (Certificate, error) {
	if isNull(data) {
		return nil, fieldErrorf(path, "missing certificate")
	}
	certType, err := variantType(data, path)
	if err != nil {
		return nil, err
	}
	switch certType {
	case CertificateTypeRegisterPool:
		var tmp struct {
			PoolParams json.RawMessage `json:"poolParams"`
		}
		if err := unmarshalField(data, &tmp, path); err != nil {
			return nil, err
		}
		poolParams, err := decodePoolParams(
			tmp.PoolParams,
			joinPath(path, "poolParams"),
		)
		if err != nil {
			return nil, err
		}
		return RegisterPool{PoolParams: poolParams}, nil
	case CertificateTypeRegisterStake:
		var tmp RegisterStake
		if err := unmarshalField(data, &tmp, path); err != nil {
			return nil, err
		}
		return tmp, nil
	case CertificateTypeDelegateStake:
		var tmp DelegateStake
		if err := unmarshalField(data, &tmp, path); err != nil {
			return nil, err
		}
		return tmp, nil
	case CertificateTypeDeregisterStake:
		var tmp DeregisterStake
		if err := unmarshalField(data, &tmp, path); err != nil {
			return nil, err
		}
		return tmp, nil
	case CertificateTypeRetirePool:
		var tmp RetirePool
		if err := unmarshalField(data, &tmp, path); err != nil {
			return nil, err
		}
		return tmp, nil
	default:
		return nil, unknownVariant(
			path,
			certType,
			CertificateTypeRegisterPool,
			CertificateTypeRegisterStake,
			CertificateTypeDelegateStake,
			CertificateTypeDeregisterStake,
			CertificateTypeRetirePool,
		)
	}
}

func stakeCredentialUtxorpc(stakeKeyHash string) (*utxorpc.StakeCredential, error) {
	keyHash, err := primitive.NewBlake2b224FromHex(stakeKeyHash)
	if err != nil {
		return nil, fmt.Errorf("invalid stake key hash: %w", err)
	}
	return &utxorpc.StakeCredential{
		StakeCredential: &utxorpc.StakeCredential_AddrKeyHash{
			AddrKeyHash: keyHash.Bytes(),
		},
	}, nil
}

// PoolParams describes a stake pool registration. Pledge and Cost are decimal strings
// because they are not limited to native integer sizes
type PoolParams struct {
	VrfKeyHash    string
	Operator      string
	Pledge        string
	Cost          string
	Margin        [2]uint64
	Relays        []Relay
	Owners        []string
	RewardAddress string
	Metadata      *PoolMetadata
}

type PoolMetadata struct {
	Url  string `json:"url"`
	Hash string `json:"hash"`
}

func (p *PoolMetadata) Utxorpc() (*utxorpc.PoolMetadata, error) {
	if p == nil {
		return nil, nil
	}
	metadataHash, err := primitive.NewBlake2b256FromHex(p.Hash)
	if err != nil {
		return nil, fmt.Errorf("invalid pool metadata hash: %w", err)
	}
	return &utxorpc.PoolMetadata{
			Url:  p.Url,
			Hash: metadataHash.Bytes(),
		},
		nil
}

type poolParamsJson struct {
	VrfKeyHash    string            `json:"vrfKeyHash"`
	Operator      string            `json:"operator"`
	Pledge        string            `json:"pledge"`
	Cost          string            `json:"cost"`
	Margin        [2]uint64         `json:"margin"`
	Relays        []json.RawMessage `json:"relays"`
	Owners        []string          `json:"owners"`
	RewardAddress string            `json:"rewardAddress"`
	Metadata      *PoolMetadata     `json:"metadata,omitempty"`
}

func (p PoolParams) MarshalJSON() ([]byte, error) {
	tmp := poolParamsJson{
		VrfKeyHash:    p.VrfKeyHash,
		Operator:      p.Operator,
		Pledge:        p.Pledge,
		Cost:          p.Cost,
		Margin:        p.Margin,
		Relays:        make([]json.RawMessage, 0, len(p.Relays)),
		Owners:        p.Owners,
		RewardAddress: p.RewardAddress,
		Metadata:      p.Metadata,
	}
	if tmp.Owners == nil {
		tmp.Owners = []string{}
	}
	for _, relay := range p.Relays {
		relayJson, err := json.Marshal(relay)
		if err != nil {
			return nil, err
		}
		tmp.Relays = append(tmp.Relays, relayJson)
	}
	return json.Marshal(tmp)
}

func (p *PoolParams) UnmarshalJSON(data []byte) error {
	tmp, err := decodePoolParams(data, "")
	if err != nil {
		return err
	}
	*p = tmp
	return nil
}

func decodePoolParams(data json.RawMessage, path string) (PoolParams, error) {
	if isNull(data) {
		return PoolParams{}, fieldErrorf(path, "missing pool parameters")
	}
	var tmp poolParamsJson
	if err := unmarshalField(data, &tmp, path); err != nil {
		return PoolParams{}, err
	}
	relays, err := decodeList(tmp.Relays, joinPath(path, "relays"), decodeRelay)
	if err != nil {
		return PoolParams{}, err
	}
	return PoolParams{
		VrfKeyHash:    tmp.VrfKeyHash,
		Operator:      tmp.Operator,
		Pledge:        tmp.Pledge,
		Cost:          tmp.Cost,
		Margin:        tmp.Margin,
		Relays:        relays,
		Owners:        tmp.Owners,
		RewardAddress: tmp.RewardAddress,
		Metadata:      tmp.Metadata,
	}, nil
}

// Utxorpc converts the pool parameters to a utxorpc pool registration certificate
func (p PoolParams) Utxorpc() (*utxorpc.PoolRegistrationCert, error) {
	operator, err := primitive.NewBlake2b224FromHex(p.Operator)
	if err != nil {
		return nil, fmt.Errorf("invalid operator: %w", err)
	}
	vrfKeyHash, err := primitive.NewBlake2b256FromHex(p.VrfKeyHash)
	if err != nil {
		return nil, fmt.Errorf("invalid VRF key hash: %w", err)
	}
	pledge, err := coinFromBigAmount(p.Pledge)
	if err != nil {
		return nil, fmt.Errorf("invalid pledge: %w", err)
	}
	cost, err := coinFromBigAmount(p.Cost)
	if err != nil {
		return nil, fmt.Errorf("invalid cost: %w", err)
	}
	if p.Margin[0] > math.MaxInt32 || p.Margin[1] > math.MaxUint32 {
		return nil, errors.New("margin does not fit a utxorpc rational number")
	}
	rewardAccount, err := primitive.AddressBytes(p.RewardAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid reward address: %w", err)
	}
	tmpPoolOwners := make([][]byte, len(p.Owners))
	for i, owner := range p.Owners {
		ownerHash, err := primitive.NewBlake2b224FromHex(owner)
		if err != nil {
			return nil, fmt.Errorf("invalid pool owner %d: %w", i, err)
		}
		tmpPoolOwners[i] = ownerHash.Bytes()
	}
	tmpRelays := make([]*utxorpc.Relay, len(p.Relays))
	for i, relay := range p.Relays {
		relayUtxo, err := relay.Utxorpc()
		if err != nil {
			return nil, fmt.Errorf("failed to convert relay %d: %w", i, err)
		}
		tmpRelays[i] = relayUtxo
	}
	poolMetadata, err := p.Metadata.Utxorpc()
	if err != nil {
		return nil, fmt.Errorf("failed to convert pool metadata: %w", err)
	}
	return &utxorpc.PoolRegistrationCert{
		Operator:   operator.Bytes(),
		VrfKeyhash: vrfKeyHash.Bytes(),
		Pledge:     pledge,
		Cost:       cost,
		// #nosec G115
		Margin: &utxorpc.RationalNumber{
			Numerator:   int32(p.Margin[0]),
			Denominator: uint32(p.Margin[1]),
		},
		RewardAccount: rewardAccount,
		PoolOwners:    tmpPoolOwners,
		Relays:        tmpRelays,
		PoolMetadata:  poolMetadata,
	}, nil
}

func coinFromBigAmount(s string) (uint64, error) {
	amount, err := primitive.ParseBigAmount(s)
	if err != nil {
		return 0, err
	}
	if !amount.IsUint64() {
		return 0, fmt.Errorf("amount %s exceeds 64 bits", s)
	}
	return amount.Uint64(), nil
}

const (
	RelayTypeSingleHostAddr = "SingleHostAddr"
	RelayTypeSingleHostName = "SingleHostName"
	RelayTypeMultiHostName  = "MultiHostName"
)

// Relay is one of SingleHostAddr, SingleHostName or MultiHostName
type Relay interface {
	isRelay()
	Utxorpc() (*utxorpc.Relay, error)
}

type SingleHostAddr struct {
	Ipv4 *string `json:"ipv4,omitempty"`
	Ipv6 *string `json:"ipv6,omitempty"`
	Port *uint16 `json:"port,omitempty"`
}

func (SingleHostAddr) isRelay() {}

func (r SingleHostAddr) Utxorpc() (*utxorpc.Relay, error) {
	ret := &utxorpc.Relay{}
	if r.Port != nil {
		ret.Port = uint32(*r.Port)
	}
	if r.Ipv4 != nil {
		ip := net.ParseIP(*r.Ipv4).To4()
		if ip == nil {
			return nil, fmt.Errorf("invalid IPv4 address %q", *r.Ipv4)
		}
		ret.IpV4 = []byte(ip)
	}
	if r.Ipv6 != nil {
		ip := net.ParseIP(*r.Ipv6)
		if ip == nil || ip.To4() != nil {
			return nil, fmt.Errorf("invalid IPv6 address %q", *r.Ipv6)
		}
		ret.IpV6 = []byte(ip.To16())
	}
	return ret, nil
}

func (r SingleHostAddr) MarshalJSON() ([]byte, error) {
	tmp := struct {
		Type string  `json:"type"`
		Ipv4 *string `json:"ipv4,omitempty"`
		Ipv6 *string `json:"ipv6,omitempty"`
		Port *uint16 `json:"port,omitempty"`
	}{
		Type: RelayTypeSingleHostAddr,
		Ipv4: r.Ipv4,
		Ipv6: r.Ipv6,
		Port: r.Port,
	}
	return json.Marshal(tmp)
}

type SingleHostName struct {
	DomainName string  `json:"domainName"`
	Port       *uint16 `json:"port,omitempty"`
}

func (SingleHostName) isRelay() {}

// Utxorpc only carries the port, utxorpc relays have no host name
func (r SingleHostName) Utxorpc() (*utxorpc.Relay, error) {
	ret := &utxorpc.Relay{}
	if r.Port != nil {
		ret.Port = uint32(*r.Port)
	}
	return ret, nil
}

func (r SingleHostName) MarshalJSON() ([]byte, error) {
	tmp := struct {
		Type       string  `json:"type"`
		DomainName string  `json:"domainName"`
		Port       *uint16 `json:"port,omitempty"`
	}{
		Type:       RelayTypeSingleHostName,
		DomainName: r.DomainName,
		Port:       r.Port,
	}
	return json.Marshal(tmp)
}

type MultiHostName struct {
	DomainName string `json:"domainName"`
}

func (MultiHostName) isRelay() {}

func (r MultiHostName) Utxorpc() (*utxorpc.Relay, error) {
	return &utxorpc.Relay{}, nil
}

func (r MultiHostName) MarshalJSON() ([]byte, error) {
	tmp := struct {
		Type       string `json:"type"`
		DomainName string `json:"domainName"`
	}{
		Type:       RelayTypeMultiHostName,
		DomainName: r.DomainName,
	}
	return json.Marshal(tmp)
}

func decodeRelay(data json.RawMessage, path string) (Relay, error) {
	if isNull(data) {
		return nil, fieldErrorf(path, "missing relay")
	}
	relayType, err := variantType(data, path)
	if err != nil {
		return nil, err
	}
	switch relayType {
	case RelayTypeSingleHostAddr:
		var tmp SingleHostAddr
		if err := unmarshalField(data, &tmp, path); err != nil {
			return nil, err
		}
		return tmp, nil
	case RelayTypeSingleHostName:
		var tmp SingleHostName
		if err := unmarshalField(data, &tmp, path); err != nil {
			return nil, err
		}
		return tmp, nil
	case RelayTypeMultiHostName:
		var tmp MultiHostName
		if err := unmarshalField(data, &tmp, path); err != nil {
			return nil, err
		}
		return tmp, nil
	default:
		return nil, unknownVariant(
			path,
			relayType,
			RelayTypeSingleHostAddr,
			RelayTypeSingleHostName,
			RelayTypeMultiHostName,
		)
	}
}
