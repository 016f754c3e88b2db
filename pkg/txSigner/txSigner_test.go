package txSigner

import (
	"context"
	"crypto/ecdsa"
	"crypto/x509/pkix"
	"encoding/asn1"
	"errors"
	"math/big"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/kms"
	"github.com/aws/aws-sdk-go/service/kms/kmsiface"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// well-known development key, never holds funds
const testPrivateKeyHex = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var testAddress = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

// fakeKMS signs with a local key and encodes like the real service
type fakeKMS struct {
	kmsiface.KMSAPI
	key      *ecdsa.PrivateKey
	highS    bool
	signErr  error
	lastSign *kms.SignInput
}

func (f *fakeKMS) GetPublicKeyWithContext(_ aws.Context, _ *kms.GetPublicKeyInput, _ ...request.Option) (*kms.GetPublicKeyOutput, error) {
	raw := crypto.FromECDSAPub(&f.key.PublicKey)
	der, err := asn1.Marshal(subjectPublicKeyInfo{
		Algorithm: pkix.AlgorithmIdentifier{Algorithm: asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}},
		PublicKey: asn1.BitString{Bytes: raw, BitLength: len(raw) * 8},
	})
	if err != nil {
		return nil, err
	}
	return &kms.GetPublicKeyOutput{PublicKey: der}, nil
}

func (f *fakeKMS) SignWithContext(_ aws.Context, input *kms.SignInput, _ ...request.Option) (*kms.SignOutput, error) {
	f.lastSign = input
	if f.signErr != nil {
		return nil, f.signErr
	}
	sig, err := crypto.Sign(input.Message, f.key)
	if err != nil {
		return nil, err
	}
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	if f.highS {
		s = new(big.Int).Sub(secp256k1N, s)
	}
	der, err := asn1.Marshal(ecdsaSignature{R: r, S: s})
	if err != nil {
		return nil, err
	}
	return &kms.SignOutput{Signature: der}, nil
}

func newFakeKMS(t *testing.T) *fakeKMS {
	key, err := crypto.HexToECDSA(testPrivateKeyHex[2:])
	require.NoError(t, err)
	return &fakeKMS{key: key}
}

func testLegacyTx() *types.Transaction {
	to := common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
	return types.NewTx(&types.LegacyTx{
		Nonce:    3,
		To:       &to,
		Value:    big.NewInt(1000),
		Gas:      50_000,
		GasPrice: big.NewInt(20_000_000_000),
	})
}

func TestPrivateKeySigner_GetAddress(t *testing.T) {
	signer, err := NewPrivateKeySigner(testPrivateKeyHex)
	require.NoError(t, err)

	address, err := signer.GetAddress()

	require.NoError(t, err)
	assert.Equal(t, testAddress, address)
}

func TestPrivateKeySigner_InvalidKey(t *testing.T) {
	_, err := NewPrivateKeySigner("0xnothex")

	assert.ErrorContains(t, err, "failed to parse private key")
}

func TestPrivateKeySigner_GetTransactOpts_SignsForChain(t *testing.T) {
	signer, err := NewPrivateKeySigner(testPrivateKeyHex)
	require.NoError(t, err)
	chainID := big.NewInt(17000)

	opts, err := signer.GetTransactOpts(context.Background(), chainID)
	require.NoError(t, err)
	assert.Equal(t, testAddress, opts.From)

	signed, err := opts.Signer(opts.From, testLegacyTx())
	require.NoError(t, err)

	sender, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
	require.NoError(t, err)
	assert.Equal(t, testAddress, sender)
}

func TestPrivateKeySigner_GetTransactOpts_NilChainID(t *testing.T) {
	signer, err := NewPrivateKeySigner(testPrivateKeyHex)
	require.NoError(t, err)

	_, err = signer.GetTransactOpts(context.Background(), nil)

	assert.Error(t, err)
}

func TestAWSKMSSigner_DerivesAddress(t *testing.T) {
	signer, err := NewAWSKMSSignerWithClient(context.Background(), newFakeKMS(t), "alias/trader")
	require.NoError(t, err)

	address, err := signer.GetAddress()

	require.NoError(t, err)
	assert.Equal(t, testAddress, address)
}

func TestAWSKMSSigner_SignsTransactions(t *testing.T) {
	tests := []struct {
		name  string
		highS bool
		tx    *types.Transaction
	}{
		{name: "legacy", tx: testLegacyTx()},
		{name: "legacy with high s from KMS", highS: true, tx: testLegacyTx()},
		{
			name: "dynamic fee",
			tx: types.NewTx(&types.DynamicFeeTx{
				ChainID:   big.NewInt(1),
				Nonce:     1,
				GasTipCap: big.NewInt(1_500_000_000),
				GasFeeCap: big.NewInt(40_000_000_000),
				Gas:       21_000,
				To:        &testAddress,
				Value:     big.NewInt(1),
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeKMS(t)
			fake.highS = tt.highS
			chainID := big.NewInt(1)

			signer, err := NewAWSKMSSignerWithClient(context.Background(), fake, "alias/trader")
			require.NoError(t, err)
			opts, err := signer.GetTransactOpts(context.Background(), chainID)
			require.NoError(t, err)

			signed, err := opts.Signer(testAddress, tt.tx)
			require.NoError(t, err)

			sender, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
			require.NoError(t, err)
			assert.Equal(t, testAddress, sender)
			require.NotNil(t, fake.lastSign)
			assert.Equal(t, kms.MessageTypeDigest, aws.StringValue(fake.lastSign.MessageType))
		})
	}
}

func TestAWSKMSSigner_AddressMismatch(t *testing.T) {
	signer, err := NewAWSKMSSignerWithClient(context.Background(), newFakeKMS(t), "alias/trader")
	require.NoError(t, err)
	opts, err := signer.GetTransactOpts(context.Background(), big.NewInt(1))
	require.NoError(t, err)

	_, err = opts.Signer(common.HexToAddress("0x01"), testLegacyTx())

	assert.ErrorContains(t, err, "address mismatch")
}

func TestAWSKMSSigner_SignError(t *testing.T) {
	fake := newFakeKMS(t)
	fake.signErr = errors.New("AccessDeniedException")
	signer, err := NewAWSKMSSignerWithClient(context.Background(), fake, "alias/trader")
	require.NoError(t, err)
	opts, err := signer.GetTransactOpts(context.Background(), big.NewInt(1))
	require.NoError(t, err)

	_, err = opts.Signer(testAddress, testLegacyTx())

	assert.ErrorContains(t, err, "AccessDeniedException")
}

func TestParseASN1Signature_Invalid(t *testing.T) {
	_, _, err := parseASN1Signature([]byte{0x30, 0x01})
	assert.Error(t, err)

	der, err := asn1.Marshal(ecdsaSignature{R: big.NewInt(0), S: big.NewInt(1)})
	require.NoError(t, err)
	_, _, err = parseASN1Signature(der)
	assert.ErrorContains(t, err, "invalid signature values")
}
