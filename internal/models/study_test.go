package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const studyYAML = `
id: checkout-redesign
title: Checkout Redesign
tasks:
  - id: find-product
    title: Find the product
    kind: task_success
    required: true
  - id: apply-coupon
    title: Apply a coupon
    kind: task_efficiency
    optimal_steps: 3
  - id: rate-checkout
    title: Rate the checkout
    kind: seq
`

func writeStudyFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "study.yaml")
	require.NoError(t, os.WriteFile(path, []byte(studyYAML), 0644))
	return path
}

func TestLoadStudy(t *testing.T) {
	study, err := LoadStudy(writeStudyFile(t))

	require.NoError(t, err)
	assert.Equal(t, "checkout-redesign", study.ID)
	require.Len(t, study.Tasks, 3)
	assert.Equal(t, KindTaskSuccess, study.Tasks[0].Kind)
	assert.Equal(t, 3, study.Tasks[1].OptimalSteps)
}

func TestLoadStudy_MissingFile(t *testing.T) {
	_, err := LoadStudy(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestStudyTaskByID(t *testing.T) {
	study, err := LoadStudy(writeStudyFile(t))
	require.NoError(t, err)

	task, found := study.TaskByID("apply-coupon")
	require.True(t, found)
	assert.Equal(t, "Apply a coupon", task.Title)

	_, found = study.TaskByID("missing")
	assert.False(t, found)
}

func TestStudyTaskIDs(t *testing.T) {
	study, err := LoadStudy(writeStudyFile(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"find-product", "apply-coupon", "rate-checkout"}, study.TaskIDs())
}

func TestAssessmentKindValid(t *testing.T) {
	assert.True(t, KindTaskSuccess.Valid())
	assert.True(t, KindTimeOnTask.Valid())
	assert.True(t, KindSEQ.Valid())
	assert.False(t, AssessmentKind("eye_tracking").Valid())
	assert.False(t, AssessmentKind("").Valid())
}
