package core

import (
	"bytes"
	"log/slog"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/wsvm/console"
	"github.com/sarchlab/wsvm/instr"
	"github.com/sarchlab/wsvm/program"
)

var _ = Describe("PrintState", func() {
	It("should render stack, call stack and heap", func() {
		vm := NewBuilder().
			WithConsole(console.New(strings.NewReader(""), new(bytes.Buffer))).
			Build(program.Program{
				instr.WithArg(instr.Push, 4),
				instr.WithArg(instr.Push, 77),
				instr.New(instr.Store),
				instr.WithArg(instr.Push, -3),
				instr.New(instr.End),
			})
		Expect(vm.Run()).To(Succeed())

		buf := new(bytes.Buffer)
		PrintState(buf, vm)

		text := strings.ToLower(buf.String())
		Expect(text).To(ContainSubstring("data stack"))
		Expect(text).To(ContainSubstring("-3"))
		Expect(text).To(ContainSubstring("heap"))
		Expect(text).To(ContainSubstring("77"))
		Expect(text).To(ContainSubstring("call stack"))
	})
})

var _ = Describe("LogState", func() {
	It("should log a debug checkpoint", func() {
		vm := NewBuilder().
			WithConsole(console.New(strings.NewReader(""), new(bytes.Buffer))).
			Build(program.Program{
				instr.WithArg(instr.Push, 9),
				instr.New(instr.End),
			})
		Expect(vm.Run()).To(Succeed())

		buf := new(bytes.Buffer)
		logger := slog.New(slog.NewTextHandler(buf,
			&slog.HandlerOptions{Level: slog.LevelDebug}))

		LogState(logger, vm)

		Expect(buf.String()).To(ContainSubstring("msg=StateCheckpoint"))
		Expect(buf.String()).To(ContainSubstring("Steps=2"))
		Expect(buf.String()).To(ContainSubstring("Halted=true"))
	})
})
