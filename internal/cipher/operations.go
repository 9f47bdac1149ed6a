package cipher

import (
	"context"
	"fmt"

	"github.com/scytale-project/scytale/internal/route"
)

// intParam extracts an integer parameter, accepting the float64 values
// JSON decoding produces.
func intParam(params map[string]interface{}, name string) (int, error) {
	raw, ok := params[name]
	if !ok {
		return 0, fmt.Errorf("%s parameter is required", name)
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("%s parameter must be an integer, got %T", name, raw)
	}
}

func stringParam(params map[string]interface{}, name string) (string, error) {
	raw, ok := params[name]
	if !ok {
		return "", fmt.Errorf("%s parameter is required", name)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s parameter must be a string, got %T", name, raw)
	}
	return s, nil
}

func boolParam(params map[string]interface{}, name string, fallback bool) (bool, error) {
	raw, ok := params[name]
	if !ok {
		return fallback, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("%s parameter must be a boolean, got %T", name, raw)
	}
	return b, nil
}

// Caesar Operations

// CaesarEncodeOp shifts every letter forward by the shift parameter.
type CaesarEncodeOp struct {
	BaseOperation
}

func (op *CaesarEncodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	shift, err := intParam(params, "shift")
	if err != nil {
		return nil, err
	}
	return []byte(Rotate(string(input), shift)), nil
}

// CaesarDecodeOp shifts every letter backward by the shift parameter.
type CaesarDecodeOp struct {
	BaseOperation
}

func (op *CaesarDecodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	shift, err := intParam(params, "shift")
	if err != nil {
		return nil, err
	}
	return []byte(Rotate(string(input), -shift)), nil
}

// Rot13Op applies the self-inverse 13-position rotation.
type Rot13Op struct {
	BaseOperation
}

func (op *Rot13Op) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	return []byte(Rotate(string(input), 13)), nil
}

// Vigenère Operations

// VigenereEncodeOp encrypts with a repeating keyword.
type VigenereEncodeOp struct {
	BaseOperation
}

func (op *VigenereEncodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	key, err := stringParam(params, "key")
	if err != nil {
		return nil, err
	}
	encoded, err := VigenereEncode(string(input), key)
	if err != nil {
		return nil, fmt.Errorf("vigenere encode failed: %w", err)
	}
	return []byte(encoded), nil
}

// VigenereDecodeOp decrypts with a repeating keyword.
type VigenereDecodeOp struct {
	BaseOperation
}

func (op *VigenereDecodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	key, err := stringParam(params, "key")
	if err != nil {
		return nil, err
	}
	decoded, err := VigenereDecode(string(input), key)
	if err != nil {
		return nil, fmt.Errorf("vigenere decode failed: %w", err)
	}
	return []byte(decoded), nil
}

// Substitution Operation

// SubstituteOp applies an alphabetic substitution table. The mapping
// parameter is an object of single-character keys to single-character
// values; characters outside the table pass through.
type SubstituteOp struct {
	BaseOperation
}

func (op *SubstituteOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	raw, ok := params["mapping"]
	if !ok {
		return nil, fmt.Errorf("mapping parameter is required")
	}
	table, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("mapping parameter must be an object, got %T", raw)
	}
	mapping := make(map[rune]rune, len(table))
	for from, rawTo := range table {
		to, ok := rawTo.(string)
		if !ok {
			return nil, fmt.Errorf("mapping value for %q must be a string, got %T", from, rawTo)
		}
		fromRunes := []rune(from)
		toRunes := []rune(to)
		if len(fromRunes) != 1 || len(toRunes) != 1 {
			return nil, fmt.Errorf("mapping entry %q -> %q must be single characters", from, to)
		}
		mapping[fromRunes[0]] = toRunes[0]
	}
	return []byte(SubstituteAlphabet(string(input), mapping)), nil
}

// Spiral Route Operations

func spiralParams(params map[string]interface{}) (width, length int, clockwise, inward bool, err error) {
	if width, err = intParam(params, "width"); err != nil {
		return
	}
	if length, err = intParam(params, "length"); err != nil {
		return
	}
	if clockwise, err = boolParam(params, "clockwise", true); err != nil {
		return
	}
	inward, err = boolParam(params, "inward", true)
	return
}

// SpiralEncodeOp writes text into a grid along a spiral route and reads
// the ciphertext back row by row.
type SpiralEncodeOp struct {
	BaseOperation
}

func (op *SpiralEncodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	width, length, clockwise, inward, err := spiralParams(params)
	if err != nil {
		return nil, err
	}
	encoded, err := route.SpiralEncode(string(input), width, length, clockwise, inward)
	if err != nil {
		return nil, fmt.Errorf("spiral encode failed: %w", err)
	}
	return []byte(encoded), nil
}

// SpiralDecodeOp reverses SpiralEncodeOp for the same grid parameters.
type SpiralDecodeOp struct {
	BaseOperation
}

func (op *SpiralDecodeOp) Execute(ctx context.Context, input []byte, params map[string]interface{}) ([]byte, error) {
	width, length, clockwise, inward, err := spiralParams(params)
	if err != nil {
		return nil, err
	}
	decoded, err := route.SpiralDecode(string(input), width, length, clockwise, inward)
	if err != nil {
		return nil, fmt.Errorf("spiral decode failed: %w", err)
	}
	return []byte(decoded), nil
}

// init registers the classical cipher operations.
func init() {
	caesarEncode := &CaesarEncodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "caesar_encode",
			TypeValue:        OperationTypeEncrypt,
			DescriptionValue: "Shift letters forward by a fixed amount",
		},
	}
	caesarDecode := &CaesarDecodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "caesar_decode",
			TypeValue:        OperationTypeDecrypt,
			DescriptionValue: "Shift letters backward by a fixed amount",
		},
	}
	caesarEncode.ReverseOp = caesarDecode
	caesarDecode.ReverseOp = caesarEncode

	rot13 := &Rot13Op{
		BaseOperation: BaseOperation{
			NameValue:        "rot13",
			TypeValue:        OperationTypeEncrypt,
			DescriptionValue: "Rotate letters by 13 positions (self-inverse)",
		},
	}
	rot13.ReverseOp = rot13

	vigenereEncode := &VigenereEncodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "vigenere_encode",
			TypeValue:        OperationTypeEncrypt,
			DescriptionValue: "Encrypt with a repeating-key Caesar shift",
		},
	}
	vigenereDecode := &VigenereDecodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "vigenere_decode",
			TypeValue:        OperationTypeDecrypt,
			DescriptionValue: "Decrypt with a repeating-key Caesar shift",
		},
	}
	vigenereEncode.ReverseOp = vigenereDecode
	vigenereDecode.ReverseOp = vigenereEncode

	substitute := &SubstituteOp{
		BaseOperation: BaseOperation{
			NameValue:        "substitute",
			TypeValue:        OperationTypeEncrypt,
			DescriptionValue: "Apply an alphabetic substitution table",
		},
	}

	spiralEncode := &SpiralEncodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "route_spiral_encode",
			TypeValue:        OperationTypeTranspose,
			DescriptionValue: "Transpose text along a spiral route through a grid",
		},
	}
	spiralDecode := &SpiralDecodeOp{
		BaseOperation: BaseOperation{
			NameValue:        "route_spiral_decode",
			TypeValue:        OperationTypeTranspose,
			DescriptionValue: "Reverse a spiral route transposition",
		},
	}
	spiralEncode.ReverseOp = spiralDecode
	spiralDecode.ReverseOp = spiralEncode

	RegisterOperation(caesarEncode)
	RegisterOperation(caesarDecode)
	RegisterOperation(rot13)
	RegisterOperation(vigenereEncode)
	RegisterOperation(vigenereDecode)
	RegisterOperation(substitute)
	RegisterOperation(spiralEncode)
	RegisterOperation(spiralDecode)
}
