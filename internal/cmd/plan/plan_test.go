/*
This file is part of Rollrestart.

Copyright (C) 2026 The Rollrestart Authors.
*/

package plan

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/gaeops/rollrestart/internal/cmd/tool"
	"github.com/gaeops/rollrestart/pkg/rollout"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Plan rendering", func() {
	key := rollout.VersionKey{Service: "my_service", Version: "my_version"}
	cutoff := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)

	commands := []rollout.RestartCommand{
		{InstanceName: "vm_2019", Key: key, ProjectID: "my_project"},
		{InstanceName: "vm_2020", Key: key, ProjectID: "my_project"},
	}

	It("renders one table row per command, in plan order", func() {
		var buffer bytes.Buffer
		err := printPlan(&buffer, "my_project", key, cutoff, commands, tool.OutputFormatText)
		Expect(err).ToNot(HaveOccurred())

		output := buffer.String()
		Expect(output).To(ContainSubstring("2 stale instances"))
		Expect(output).To(ContainSubstring("vm_2019"))
		Expect(output).To(ContainSubstring("vm_2020"))
		Expect(bytes.Index(buffer.Bytes(), []byte("vm_2019"))).
			To(BeNumerically("<", bytes.Index(buffer.Bytes(), []byte("vm_2020"))))
	})

	It("tells when there is nothing to restart", func() {
		var buffer bytes.Buffer
		err := printPlan(&buffer, "my_project", key, cutoff, nil, tool.OutputFormatText)
		Expect(err).ToNot(HaveOccurred())
		Expect(buffer.String()).To(ContainSubstring("Nothing to restart"))
	})

	It("renders a machine-readable summary", func() {
		var buffer bytes.Buffer
		err := printPlan(&buffer, "my_project", key, cutoff, commands, tool.OutputFormatJSON)
		Expect(err).ToNot(HaveOccurred())

		var summary Summary
		Expect(json.Unmarshal(buffer.Bytes(), &summary)).To(Succeed())
		Expect(summary.Project).To(Equal("my_project"))
		Expect(summary.Service).To(Equal("my_service"))
		Expect(summary.Version).To(Equal("my_version"))
		Expect(summary.Cutoff).To(Equal("2020-06-01T00:00:00Z"))
		Expect(summary.Commands).To(HaveLen(2))
		Expect(summary.Commands[0].Instance).To(Equal("vm_2019"))
		Expect(summary.Commands[0].Command).To(HavePrefix("gcloud app instances delete vm_2019"))
	})
})
