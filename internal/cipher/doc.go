// Package cipher provides classical substitution ciphers and the
// transformation pipeline the Scytale toolkit is built on.
//
// # Overview
//
// The package has two layers:
//   - Pure text transforms: Caesar rotation, Vigenère encode/decode,
//     alphabetic substitution, and the naive frequency-rank table.
//   - An operation registry with chainable pipelines and a recipe
//     library for saving transformation chains.
//
// These are pedagogical ciphers. None of them is secure and none of
// them is meant to be.
//
// # Quick Start
//
// Direct transforms:
//
//	crypt, _ := cipher.VigenereEncode("cryptoisshortforcryptography", "abcd")
//	plain, _ := cipher.VigenereDecode(crypt, "abcd")
//
// Registry operations:
//
//	op, _ := cipher.GetOperation("caesar_encode")
//	out, _ := op.Execute(ctx, []byte("attack at dawn"), map[string]interface{}{"shift": 3})
//
// # Transformation Pipelines
//
// Chain multiple operations together:
//
//	pipeline := &cipher.Pipeline{
//	    Operations: []cipher.OperationConfig{
//	        {Name: "vigenere_encode", Parameters: map[string]interface{}{"key": "lemon"}},
//	        {Name: "route_spiral_encode", Parameters: map[string]interface{}{"width": 5, "length": 5}},
//	    },
//	    Reversible: true,
//	}
//
//	encoded, _ := pipeline.Execute(ctx, plaintext)
//	reversed, _ := pipeline.Reverse()
//	decoded, _ := reversed.Execute(ctx, encoded)
//
// # Available Operations
//
//   - caesar_encode/caesar_decode - fixed-shift rotation (param: shift)
//   - rot13 - self-inverse 13-position rotation
//   - vigenere_encode/vigenere_decode - repeating-key shift (param: key)
//   - substitute - alphabetic substitution (param: mapping)
//   - route_spiral_encode/route_spiral_decode - spiral transposition
//     (params: width, length, clockwise, inward)
//
// # Thread Safety
//
// The operation registry is thread-safe. Individual operations are
// stateless and safe for concurrent use. RecipeManager locks
// internally.
package cipher
