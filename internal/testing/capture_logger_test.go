package testing

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/emploader/pkg/emploader"
)

var _ emploader.Logger = (*CaptureLogger)(nil)

func TestCaptureLogger_RecordsLevelsInOrder(t *testing.T) {
	l := NewCaptureLogger()
	l.Verbose("connecting to %s", "company")
	l.Info("✓ Inserted %d employee(s)", 3)
	l.Error("failed: %v", "boom")

	assert.Equal(t, []string{
		"[VERBOSE] connecting to company",
		"[INFO] ✓ Inserted 3 employee(s)",
		"[ERROR] failed: boom",
	}, l.Messages())
	assert.True(t, l.Contains("Inserted 3"))
	assert.False(t, l.Contains("Inserted 4"))
}

func TestCaptureLogger_ConcurrentUse(t *testing.T) {
	l := NewCaptureLogger()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Verbose("notice %d", i)
		}(i)
	}
	wg.Wait()

	assert.Len(t, l.Messages(), 50)
}
