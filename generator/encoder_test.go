package generator

import (
	"math"
	"testing"
)

// 编码解码往返，误差不超过量化半步 0.05℃
func TestEncodeDecodeRoundtrip(t *testing.T) {
	field := mustGenerate(t, 0, 24, 0.25, mustDepths(t, 50, 51))
	encoded, err := EncodeField(field)
	if err != nil {
		t.Fatal(err)
	}
	if len(encoded.Rows) != len(field.Depths) {
		t.Fatalf("expected %d rows, got %d", len(field.Depths), len(encoded.Rows))
	}
	for i, row := range encoded.Rows {
		decoded := DecodeRow(row)
		if len(decoded) != len(field.Times) {
			t.Fatalf("row %d: expected %d samples, got %d", i, len(field.Times), len(decoded))
		}
		for j, v := range decoded {
			if math.Abs(v-field.Data[i][j]) > 0.05+1e-9 {
				t.Fatalf("row %d sample %d: decoded %v, original %v", i, j, v, field.Data[i][j])
			}
		}
	}
}

// 相邻时刻温差超出 int8 量化范围时必须报错而不是静默截断
func TestEncodeRowOverflow(t *testing.T) {
	_, err := encodeRow([]float64{0, 100})
	if err == nil {
		t.Fatal("expected overflow error")
	}
}

func TestEncodeEmptyRow(t *testing.T) {
	_, err := encodeRow(nil)
	if err == nil {
		t.Fatal("expected error for empty row")
	}
}
