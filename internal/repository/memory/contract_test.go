package memory_test

import (
	"testing"

	"github.com/megareality/estate/internal/repository/memory"
	"github.com/megareality/estate/internal/repository/repotest"
)

func TestMemoryRepositories(t *testing.T) {
	repotest.Run(t, memory.New())
}
