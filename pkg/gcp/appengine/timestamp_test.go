/*
This file is part of Rollrestart.

Copyright (C) 2026 The Rollrestart Authors.
*/

package appengine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Admin API timestamp parsing", func() {
	It("parses a timestamp without a fractional part", func() {
		parsed, err := ParseTimestamp("2020-01-01T00:00:00Z")
		Expect(err).ToNot(HaveOccurred())
		Expect(parsed).To(Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))
	})

	It("pads a short fractional part with trailing zeros", func() {
		parsed, err := ParseTimestamp("2020-01-01T00:00:00.9Z")
		Expect(err).ToNot(HaveOccurred())
		Expect(parsed).To(Equal(time.Date(2020, 1, 1, 0, 0, 0, 900000000, time.UTC)))
	})

	It("truncates a nanosecond fractional part without rounding", func() {
		parsed, err := ParseTimestamp("2020-01-01T00:00:00.999999999Z")
		Expect(err).ToNot(HaveOccurred())
		Expect(parsed).To(Equal(time.Date(2020, 1, 1, 0, 0, 0, 999999000, time.UTC)))
	})

	It("accepts every fractional digit count the API can emit", func() {
		for digits := 1; digits <= 9; digits++ {
			value := fmt.Sprintf("2020-01-01T00:00:00.%sZ", strings.Repeat("1", digits))
			parsed, err := ParseTimestamp(value)
			Expect(err).ToNot(HaveOccurred(), "digits=%d", digits)
			Expect(parsed.Truncate(time.Second)).
				To(Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)), "digits=%d", digits)
		}
	})

	It("keeps microsecond resolution for six fractional digits", func() {
		parsed, err := ParseTimestamp("2020-01-01T00:00:00.123456Z")
		Expect(err).ToNot(HaveOccurred())
		Expect(parsed).To(Equal(time.Date(2020, 1, 1, 0, 0, 0, 123456000, time.UTC)))
	})

	It("parses the result in UTC", func() {
		parsed, err := ParseTimestamp("2019-06-15T11:22:33.5Z")
		Expect(err).ToNot(HaveOccurred())
		Expect(parsed.Location()).To(Equal(time.UTC))
	})

	DescribeTable("rejecting malformed timestamps",
		func(value string) {
			_, err := ParseTimestamp(value)
			var parseError *ParseError
			Expect(err).To(HaveOccurred())
			Expect(errors.As(err, &parseError)).To(BeTrue())
			Expect(parseError.Value).To(Equal(value))
		},
		Entry("empty string", ""),
		Entry("missing zone designator", "2020-01-01T00:00:00"),
		Entry("numeric zone offset", "2020-01-01T00:00:00+00:00"),
		Entry("missing date separator", "2020-01-01 00:00:00Z"),
		Entry("ten fractional digits", "2020-01-01T00:00:00.1234567890Z"),
		Entry("empty fractional part", "2020-01-01T00:00:00.Z"),
		Entry("month out of range", "2020-13-01T00:00:00Z"),
		Entry("day out of range", "2020-02-30T00:00:00Z"),
		Entry("trailing garbage", "2020-01-01T00:00:00Zx"),
	)
})
