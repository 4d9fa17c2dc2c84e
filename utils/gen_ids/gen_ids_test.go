package gen_ids

import (
	"strings"
	"testing"
	"time"
)

func Test_GetIdAttemptId(t *testing.T) {
	InitGenIDservice()

	first := GetIdAttemptId()
	second := GetIdAttemptId()

	prefix := "PV" + time.Now().Format("20060102") + "-"

	if !strings.HasPrefix(first, prefix) {
		t.Errorf("GetIdAttemptId() = %v, expect prefix %v", first, prefix)
	}

	// 9-digit zero padded sequence after the date
	if len(first) != len(prefix)+9 {
		t.Errorf("GetIdAttemptId() = %v, expect %v digits after the prefix", first, 9)
	}

	if first == second {
		t.Errorf("consecutive ids must differ, got %v twice", first)
	}
}
