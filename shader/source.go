package shader

import (
	"github.com/cockroachdb/errors"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
)

// Source is one shader stage's source together with its compiled forms.
//
// A Source starts out as WGSL text. Parse produces the naga IR module used
// for reflection; Compile additionally produces the SPIR-V words the
// device consumes. Both are cached, so repeated calls are cheap.
//
// Source is NOT safe for concurrent use. CompileAll compiles a batch of
// distinct sources concurrently; a single Source must not be shared
// between goroutines while compiling.
type Source struct {
	// Filename is the source's name, used in diagnostics and debug labels.
	Filename string

	// WGSL is the shader source text.
	WGSL string

	module *ir.Module
	spirv  []uint32
}

// NewSource creates a shader source from WGSL text. No parsing or
// compilation happens until Parse or Compile is called.
func NewSource(filename, wgslText string) *Source {
	return &Source{Filename: filename, WGSL: wgslText}
}

// NewPrecompiledSource creates a source from already-compiled SPIR-V
// words. Compile is a no-op on such a source; Parse fails because there is
// no WGSL to parse, so reflection must come from elsewhere. Useful when
// shader binaries arrive from an offline compiler.
func NewPrecompiledSource(filename string, spirv []uint32) *Source {
	return &Source{Filename: filename, spirv: spirv}
}

// Parse returns the naga IR module for the source, parsing the WGSL text
// on first use.
func (s *Source) Parse() (*ir.Module, error) {
	if s.module != nil {
		return s.module, nil
	}
	if s.WGSL == "" {
		return nil, errors.Newf("shader %s has no WGSL source to parse", s.Filename)
	}
	ast, err := naga.Parse(s.WGSL)
	if err != nil {
		return nil, errors.Wrapf(err, "parse shader %s", s.Filename)
	}
	module, err := naga.LowerWithSource(ast, s.WGSL)
	if err != nil {
		return nil, errors.Wrapf(err, "parse shader %s", s.Filename)
	}
	s.module = module
	return module, nil
}

// Compile ensures the source has compiled SPIR-V, compiling the WGSL text
// on first use. Precompiled sources return immediately.
func (s *Source) Compile() error {
	if s.spirv != nil {
		return nil
	}
	spirvBytes, err := naga.Compile(s.WGSL)
	if err != nil {
		return errors.Wrapf(err, "compile shader %s", s.Filename)
	}
	s.spirv = spirvWords(spirvBytes)
	return nil
}

// SPIRV returns the compiled SPIR-V words, or nil if the source has not
// been compiled.
func (s *Source) SPIRV() []uint32 {
	return s.spirv
}

// spirvWords packs SPIR-V bytes into little-endian 32-bit words.
func spirvWords(spirvBytes []byte) []uint32 {
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words
}
