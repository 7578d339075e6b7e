package console_test

import (
	"bytes"
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/wsvm/console"
)

var _ = Describe("Std", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = new(bytes.Buffer)
	})

	It("should read characters and lines from the same input", func() {
		c := console.New(strings.NewReader("hé42\r\n-7"), out)

		r, err := c.ReadChar()
		Expect(err).NotTo(HaveOccurred())
		Expect(r).To(Equal('h'))

		r, err = c.ReadChar()
		Expect(err).NotTo(HaveOccurred())
		Expect(r).To(Equal('é'))

		line, err := c.ReadLine()
		Expect(err).NotTo(HaveOccurred())
		Expect(line).To(Equal("42"))

		line, err = c.ReadLine()
		Expect(err).NotTo(HaveOccurred())
		Expect(line).To(Equal("-7"))

		_, err = c.ReadLine()
		Expect(err).To(MatchError(io.EOF))
	})

	It("should buffer output until a newline", func() {
		c := console.New(strings.NewReader(""), out)

		Expect(c.WriteNumber(-12)).To(Succeed())
		Expect(c.WriteChar('!')).To(Succeed())
		Expect(out.String()).To(BeEmpty())

		Expect(c.WriteChar('\n')).To(Succeed())
		Expect(out.String()).To(Equal("-12!\n"))
	})

	It("should write everything on Flush", func() {
		c := console.New(strings.NewReader(""), out)

		Expect(c.WriteNumber(8)).To(Succeed())
		Expect(c.Flush()).To(Succeed())
		Expect(out.String()).To(Equal("8"))
	})

	It("should report end of input", func() {
		c := console.New(strings.NewReader(""), out)

		_, err := c.ReadChar()
		Expect(err).To(MatchError(io.EOF))
	})

	It("should flush pending output before reading", func() {
		c := console.New(strings.NewReader("y\n7\n"), out)

		Expect(c.WriteChar('?')).To(Succeed())
		Expect(out.String()).To(BeEmpty())

		_, err := c.ReadChar()
		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(Equal("?"))

		Expect(c.WriteNumber(1)).To(Succeed())
		_, err = c.ReadLine()
		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(Equal("?1"))
	})

	It("should reject invalid UTF-8 input", func() {
		c := console.New(strings.NewReader("\xffa"), out)

		_, err := c.ReadChar()
		Expect(err).To(MatchError(console.ErrInvalidUTF8))

		r, err := c.ReadChar()
		Expect(err).NotTo(HaveOccurred())
		Expect(r).To(Equal('a'))
	})
})
