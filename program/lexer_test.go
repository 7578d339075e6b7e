package program_test

import (
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/wsvm/codec"
	"github.com/sarchlab/wsvm/instr"
	"github.com/sarchlab/wsvm/program"
)

// stl lexes a program written in S/T/L notation.
func stl(src string) (program.Program, error) {
	return program.Lex(program.FromSTL(src))
}

var _ = Describe("Normalize", func() {
	It("should keep only spaces, tabs and newlines in order", func() {
		Expect(program.Normalize("a \tb\nc d")).To(Equal(" \t\n "))
	})

	It("should turn comment-only text into an empty program", func() {
		p, err := program.Lex("just_a_comment")
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(BeEmpty())
	})

	It("should keep spaces inside comments as code", func() {
		_, err := program.Lex("just a comment")
		Expect(err).To(MatchError(program.ErrMissingTerminator))
	})

	It("should read S/T/L notation", func() {
		Expect(program.FromSTL("S T\nL x")).To(Equal(" \t\n"))
	})
})

var _ = Describe("Lexer", func() {
	It("should lex every command", func() {
		p, err := stl(
			"SSSTSTL" + // push 5
				"SLS" + // duplicate
				"STSSTL" + // copy 1
				"SLT" + // swap
				"SLL" + // discard
				"STLSTTL" + // slide 3
				"TSSS" + "TSST" + "TSSL" + "TSTS" + "TSTT" +
				"TTS" + "TTT" +
				"LSSSTL" + // mark 01
				"LSTSTL" + // call 01
				"LSLSTL" + // jump 01
				"LTSSTL" + // jz 01
				"LTTSTL" + // jn 01
				"LTL" + "LLL" +
				"TLSS" + "TLST" + "TLTS" + "TLTT")
		Expect(err).NotTo(HaveOccurred())

		Expect(p).To(Equal(program.Program{
			instr.WithArg(instr.Push, 5),
			instr.New(instr.Duplicate),
			instr.WithArg(instr.Copy, 1),
			instr.New(instr.Swap),
			instr.New(instr.Discard),
			instr.WithArg(instr.Slide, 3),
			instr.New(instr.Add),
			instr.New(instr.Sub),
			instr.New(instr.Mul),
			instr.New(instr.Div),
			instr.New(instr.Mod),
			instr.New(instr.Store),
			instr.New(instr.Retrieve),
			instr.WithLabel(instr.Mark, "01"),
			instr.WithLabel(instr.Call, "01"),
			instr.WithLabel(instr.Jump, "01"),
			instr.WithLabel(instr.JumpZero, "01"),
			instr.WithLabel(instr.JumpNegative, "01"),
			instr.New(instr.Return),
			instr.New(instr.End),
			instr.New(instr.OutputChar),
			instr.New(instr.OutputNumber),
			instr.New(instr.InputChar),
			instr.New(instr.InputNumber),
		}))
	})

	It("should ignore comments between the characters of an instruction", func() {
		p, err := program.Lex("push: [ ] [ ]\tone[\t]end\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(Equal(program.Program{instr.WithArg(instr.Push, 3)}))
	})

	It("should decode negative numbers", func() {
		p, err := stl("SSTTSL")
		Expect(err).NotTo(HaveOccurred())
		Expect(p[0].Arg).To(Equal(int64(-2)))
	})

	It("should decode an empty number as zero", func() {
		p, err := stl("SSL" + "SSSL")
		Expect(err).NotTo(HaveOccurred())
		Expect(p[0].Arg).To(BeZero())
		Expect(p[1].Arg).To(BeZero())
	})

	It("should keep labels as raw bits", func() {
		p, err := stl("LSSSSTL" + "LSSSTL" + "LSSL")
		Expect(err).NotTo(HaveOccurred())
		Expect(p[0].Label).To(Equal(codec.Bits("001")))
		Expect(p[1].Label).To(Equal(codec.Bits("01")))
		Expect(p[2].Label).To(Equal(codec.Bits("")))
	})

	It("should lex a program without end_program", func() {
		p, err := stl("SSSTL")
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(HaveLen(1))
	})

	Context("errors", func() {
		It("should reject two tabs without a heap command", func() {
			_, err := stl("SSSTL" + "TTL")

			var lexErr *program.LexError
			Expect(errors.As(err, &lexErr)).To(BeTrue())
			Expect(lexErr.Pos).To(Equal(5))
			Expect(lexErr.Near).To(Equal("TTL"))
			Expect(err).To(MatchError(program.ErrUnrecognizedCommand))
		})

		It("should reject an unknown arithmetic command", func() {
			_, err := stl("TSLS")
			Expect(err).To(MatchError(program.ErrUnrecognizedCommand))
		})

		It("should reject a dangling category prefix", func() {
			_, err := stl("SSSTL" + "T")

			var lexErr *program.LexError
			Expect(errors.As(err, &lexErr)).To(BeTrue())
			Expect(lexErr.Pos).To(Equal(5))
			Expect(err).To(MatchError(program.ErrUnrecognizedCategory))
		})

		It("should reject a parameter without a newline", func() {
			_, err := stl("SSSTT")
			Expect(err).To(MatchError(program.ErrMissingTerminator))
		})

		It("should reject a label without a newline", func() {
			_, err := stl("LSSST")
			Expect(err).To(MatchError(program.ErrMissingTerminator))
		})

		It("should reject numbers wider than 63 bits", func() {
			src := "SSS"
			for i := 0; i < 64; i++ {
				src += "T"
			}
			_, err := stl(src + "L")
			Expect(err).To(MatchError(program.ErrNumberOutOfRange))
		})
	})
})

var _ = Describe("Program", func() {
	It("should render back to source that lexes to the same program", func() {
		p := program.Program{
			instr.WithArg(instr.Push, -12),
			instr.WithArg(instr.Push, 0),
			instr.WithArg(instr.Copy, 1),
			instr.WithLabel(instr.Mark, ""),
			instr.WithLabel(instr.Call, "0010"),
			instr.New(instr.Add),
			instr.New(instr.Retrieve),
			instr.New(instr.InputNumber),
			instr.New(instr.End),
		}

		again, err := program.Lex(p.Source())
		Expect(err).NotTo(HaveOccurred())
		Expect(again).To(Equal(p))
	})

	It("should list instructions with their addresses", func() {
		p := program.Program{
			instr.WithArg(instr.Push, 5),
			instr.WithLabel(instr.Jump, "01"),
			instr.New(instr.End),
		}
		Expect(p.Listing()).To(Equal(
			"   0  push 5\n" +
				"   1  jump_unconditional 01\n" +
				"   2  end_program\n"))
	})

	It("should know the encoding of every command", func() {
		for _, cmd := range instr.Commands() {
			_, ok := program.DefaultISA().Encoding(cmd)
			Expect(ok).To(BeTrue(), cmd.String())
		}
	})
})

var _ = Describe("LoadFile", func() {
	It("should load and lex a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "prog.ws")
		Expect(os.WriteFile(path, []byte("x   \t\n\n\n\n"), 0o644)).To(Succeed())

		p, err := program.LoadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(Equal(program.Program{
			instr.WithArg(instr.Push, 1),
			instr.New(instr.End),
		}))
	})

	It("should load S/T/L files", func() {
		path := filepath.Join(GinkgoT().TempDir(), "prog.stl")
		Expect(os.WriteFile(path, []byte("SSSTL\nLLL\n"), 0o644)).To(Succeed())

		p, err := program.LoadFileSTL(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(HaveLen(2))
	})

	It("should report a missing file", func() {
		_, err := program.LoadFile(filepath.Join(GinkgoT().TempDir(), "none.ws"))
		Expect(err).To(MatchError(program.ErrFileNotFound))
	})
})
