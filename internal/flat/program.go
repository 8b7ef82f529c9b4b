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

package flat

import (
	"fmt"
)

const (
	termTagSize     = 4
	typeTagSize     = 4
	builtinTagSize  = 7
	maxChunkedBytes = 255
)

const (
	TermVar = iota
	TermDelay
	TermLambda
	TermApply
	TermConstant
	TermForce
	TermError
	TermBuiltin
	TermConstr
	TermCase
)

const (
	TypeInteger = iota
	TypeByteString
	TypeString
	TypeUnit
	TypeBool
	TypeList
	TypePair
	TypeApplication
	TypeData
	TypeBls12381G1
	TypeBls12381G2
	TypeBls12381MlResult
)

// Version is the language version prefix of a program.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Program describes where the parts of a flat-encoded program (DeBruijn binders) live
// within its encoding, without building a term tree.
type Program struct {
	Version Version
	// Bit offsets of the top-level term.
	TermStart int
	TermEnd   int

	raw []byte
}

// Scan walks a flat-encoded program and records the boundaries of its top-level term.
// It fails if the term is malformed, the final padding is invalid, or data remains
// after the padding.
func Scan(data []byte) (*Program, error) {
	r := NewReader(data)
	p := &Program{raw: data}
	var err error
	if p.Version.Major, err = r.Natural(); err != nil {
		return nil, err
	}
	if p.Version.Minor, err = r.Natural(); err != nil {
		return nil, err
	}
	if p.Version.Patch, err = r.Natural(); err != nil {
		return nil, err
	}
	p.TermStart = r.Pos()
	t := &transcoder{r: r}
	if err := t.term(); err != nil {
		return nil, err
	}
	p.TermEnd = r.Pos()
	if err := r.Filler(); err != nil {
		return nil, err
	}
	if r.Remaining() != 0 {
		return nil, r.errorf(
			"unexpected %d trailing bytes after program",
			r.Remaining()/8,
		)
	}
	return p, nil
}

// ApplyData returns the encoding of a program whose term applies the original term to
// each of the provided CBOR-encoded Plutus data values in order, so that the first
// value is the innermost argument.
//
// The original term is re-encoded rather than copied, since the padding in front of
// byte string, string and data constants depends on their absolute bit position.
func (p *Program) ApplyData(args [][]byte) ([]byte, error) {
	sizeHint := len(p.raw) + len(args)*2
	for _, arg := range args {
		sizeHint += len(arg) + len(arg)/maxChunkedBytes + 3
	}
	w := NewWriter(sizeHint)
	w.CopyBits(p.raw, 0, p.TermStart)
	for range args {
		w.Bits(TermApply, termTagSize)
	}
	r := NewReader(p.raw)
	r.pos = p.TermStart
	t := &transcoder{r: r, w: w}
	if err := t.term(); err != nil {
		return nil, err
	}
	for _, arg := range args {
		w.Bits(TermConstant, termTagSize)
		// Type tag list containing only the data type
		w.Bit(true)
		w.Bits(TypeData, typeTagSize)
		w.Bit(false)
		w.ByteString(arg)
	}
	w.Filler()
	return w.Bytes(), nil
}

// transcoder walks a term and, when w is set, writes it back out at the writer's
// current position.
type transcoder struct {
	r *Reader
	w *Writer
}

func (t *transcoder) bit() (bool, error) {
	bit, err := t.r.Bit()
	if err != nil {
		return false, err
	}
	if t.w != nil {
		t.w.Bit(bit)
	}
	return bit, nil
}

func (t *transcoder) bits(n int) (uint64, error) {
	value, err := t.r.Bits(n)
	if err != nil {
		return 0, err
	}
	if t.w != nil {
		t.w.Bits(value, n)
	}
	return value, nil
}

// natural copies a variable-length integer of any size group by group.
func (t *transcoder) natural() error {
	for {
		group, err := t.bits(8)
		if err != nil {
			return err
		}
		if group&0x80 == 0 {
			return nil
		}
	}
}

// byteString re-chunks the value and recomputes its padding for the new position.
func (t *transcoder) byteString() error {
	data, err := t.r.ByteString()
	if err != nil {
		return err
	}
	if t.w != nil {
		t.w.ByteString(data)
	}
	return nil
}

func (t *transcoder) term() error {
	start := t.r.Pos()
	tag, err := t.bits(termTagSize)
	if err != nil {
		return err
	}
	switch tag {
	case TermVar:
		return t.natural()
	case TermDelay, TermLambda, TermForce:
		return t.term()
	case TermApply:
		if err := t.term(); err != nil {
			return err
		}
		return t.term()
	case TermConstant:
		return t.constant()
	case TermError:
		return nil
	case TermBuiltin:
		_, err := t.bits(builtinTagSize)
		return err
	case TermConstr:
		if err := t.natural(); err != nil {
			return err
		}
		return t.termList()
	case TermCase:
		if err := t.term(); err != nil {
			return err
		}
		return t.termList()
	default:
		return &Error{Offset: start, Msg: fmt.Sprintf("unknown term tag %d", tag)}
	}
}

func (t *transcoder) termList() error {
	for {
		more, err := t.bit()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		if err := t.term(); err != nil {
			return err
		}
	}
}

// constantType is a decoded constant type. Only list and pair carry arguments.
type constantType struct {
	tag  uint64
	args []*constantType
}

func (t *transcoder) constant() error {
	start := t.r.Pos()
	var tags []uint64
	for {
		more, err := t.bit()
		if err != nil {
			return err
		}
		if !more {
			break
		}
		tag, err := t.bits(typeTagSize)
		if err != nil {
			return err
		}
		tags = append(tags, tag)
	}
	typ, rest, err := parseType(tags)
	if err != nil {
		return &Error{Offset: start, Msg: err.Error()}
	}
	if len(rest) != 0 {
		return &Error{
			Offset: start,
			Msg:    fmt.Sprintf("%d unused constant type tags", len(rest)),
		}
	}
	return t.value(typ)
}

func parseType(tags []uint64) (*constantType, []uint64, error) {
	if len(tags) == 0 {
		return nil, nil, fmt.Errorf("missing constant type")
	}
	switch tags[0] {
	case TypeInteger, TypeByteString, TypeString, TypeUnit, TypeBool, TypeData:
		return &constantType{tag: tags[0]}, tags[1:], nil
	case TypeApplication:
		if len(tags) > 1 && tags[1] == TypeList {
			elem, rest, err := parseType(tags[2:])
			if err != nil {
				return nil, nil, err
			}
			return &constantType{
				tag:  TypeList,
				args: []*constantType{elem},
			}, rest, nil
		}
		if len(tags) > 2 && tags[1] == TypeApplication && tags[2] == TypePair {
			first, rest, err := parseType(tags[3:])
			if err != nil {
				return nil, nil, err
			}
			second, rest, err := parseType(rest)
			if err != nil {
				return nil, nil, err
			}
			return &constantType{
				tag:  TypePair,
				args: []*constantType{first, second},
			}, rest, nil
		}
		return nil, nil, fmt.Errorf("invalid type application")
	case TypeBls12381G1, TypeBls12381G2, TypeBls12381MlResult:
		return nil, nil, fmt.Errorf(
			"constant type %d cannot appear in a serialized program",
			tags[0],
		)
	default:
		return nil, nil, fmt.Errorf("unknown constant type tag %d", tags[0])
	}
}

func (t *transcoder) value(typ *constantType) error {
	switch typ.tag {
	case TypeInteger:
		return t.natural()
	case TypeByteString, TypeString, TypeData:
		return t.byteString()
	case TypeUnit:
		return nil
	case TypeBool:
		_, err := t.bit()
		return err
	case TypeList:
		for {
			more, err := t.bit()
			if err != nil {
				return err
			}
			if !more {
				return nil
			}
			if err := t.value(typ.args[0]); err != nil {
				return err
			}
		}
	case TypePair:
		if err := t.value(typ.args[0]); err != nil {
			return err
		}
		return t.value(typ.args[1])
	default:
		return t.r.errorf("unsupported constant type %d", typ.tag)
	}
}
