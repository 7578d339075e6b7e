package core

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/wsvm/instr"
	"github.com/sarchlab/wsvm/program"
)

var _ = Describe("LabelTable", func() {
	It("should map each mark to the next instruction", func() {
		labels := ResolveLabels(program.Program{
			instr.WithLabel(instr.Mark, "0"),
			instr.WithArg(instr.Push, 1),
			instr.WithLabel(instr.Mark, "00"),
			instr.New(instr.End),
		})

		Expect(labels).To(Equal(LabelTable{"0": 1, "00": 3}))
	})

	It("should tell keys apart by bits, not by value", func() {
		labels := ResolveLabels(program.Program{
			instr.WithLabel(instr.Mark, "1"),
			instr.WithLabel(instr.Mark, "01"),
		})

		Expect(labels.Lookup("1")).To(Equal(1))
		Expect(labels.Lookup("01")).To(Equal(2))
	})

	It("should let the last duplicate mark win", func() {
		labels := ResolveLabels(program.Program{
			instr.WithLabel(instr.Mark, "1"),
			instr.New(instr.Discard),
			instr.WithLabel(instr.Mark, "1"),
		})

		Expect(labels.Lookup("1")).To(Equal(3))
	})

	It("should fail to look up a missing key", func() {
		_, err := ResolveLabels(nil).Lookup("101")
		Expect(err).To(MatchError(ErrUndefinedLabel))
		Expect(err.Error()).To(ContainSubstring(`"101"`))
	})
})
