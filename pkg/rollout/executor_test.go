/*
This file is part of Rollrestart.

Copyright (C) 2026 The Rollrestart Authors.
*/

package rollout

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// fakeKiller records the deletions it is asked for, failing on request
type fakeKiller struct {
	deleted []string
	failOn  string
}

func (k *fakeKiller) DeleteInstance(_ context.Context, _, _, id string) error {
	if id == k.failOn {
		return errors.New("deletion failed")
	}
	k.deleted = append(k.deleted, id)
	return nil
}

var _ = Describe("Rolling restart execution", func() {
	ctx := context.Background()
	key := VersionKey{Service: "my_service", Version: "my_version"}

	plan := []RestartCommand{
		{InstanceName: "vm_1", Key: key, ProjectID: "my_project"},
		{InstanceName: "vm_2", Key: key, ProjectID: "my_project"},
		{InstanceName: "vm_3", Key: key, ProjectID: "my_project"},
	}

	It("deletes the instances in plan order", func() {
		killer := &fakeKiller{}
		executor := Executor{Killer: killer}

		Expect(executor.Execute(ctx, plan)).To(Succeed())
		Expect(killer.deleted).To(Equal([]string{"vm_1", "vm_2", "vm_3"}))
	})

	It("stops at the first failing command", func() {
		killer := &fakeKiller{failOn: "vm_2"}
		executor := Executor{Killer: killer}

		err := executor.Execute(ctx, plan)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("vm_2"))
		Expect(killer.deleted).To(Equal([]string{"vm_1"}))
	})

	It("performs no deletion in dry-run mode", func() {
		killer := &fakeKiller{}
		executor := Executor{Killer: killer, DryRun: true}

		Expect(executor.Execute(ctx, plan)).To(Succeed())
		Expect(killer.deleted).To(BeEmpty())
	})

	It("succeeds on an empty plan", func() {
		killer := &fakeKiller{}
		executor := Executor{Killer: killer}

		Expect(executor.Execute(ctx, nil)).To(Succeed())
		Expect(killer.deleted).To(BeEmpty())
	})
})
