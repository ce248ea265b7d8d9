package generator

import (
	"fmt"
	"math"
)

// 整场数据的差分编码
// 一次性推送整场时体积较大，先把温度量化为 0.1℃，再按深度行对相邻时刻做差分，
// 相邻时刻的温差很小，差值可以放进 int8

type Encoded struct {
	Start int    `json:"start"` // 行首的量化温度
	Data  []int8 `json:"data"`  // 后续各时刻相对前一时刻的差值
}

type EncodedField struct {
	Depths []float64 `json:"depths"`
	Times  []float64 `json:"times"`
	Rows   []Encoded `json:"rows"`
}

const quantizeScale = 10 // 0.1℃

func EncodeField(f *TemperatureField) (*EncodedField, error) {
	rows := make([]Encoded, len(f.Data))
	for i, row := range f.Data {
		e, err := encodeRow(row)
		if err != nil {
			return nil, fmt.Errorf("encode depth %v: %w", f.Depths[i], err)
		}
		rows[i] = e
	}
	return &EncodedField{
		Depths: f.Depths,
		Times:  f.Times,
		Rows:   rows,
	}, nil
}

func encodeRow(row []float64) (Encoded, error) {
	if len(row) == 0 {
		return Encoded{}, fmt.Errorf("empty row")
	}
	pre := quantize(row[0])
	e := Encoded{
		Start: pre,
		Data:  make([]int8, 0, len(row)-1),
	}
	for _, v := range row[1:] {
		q := quantize(v)
		gap := q - pre
		if gap < math.MinInt8 || gap > math.MaxInt8 {
			return Encoded{}, fmt.Errorf("gap %d overflows int8", gap)
		}
		e.Data = append(e.Data, int8(gap))
		pre = q
	}
	return e, nil
}

func DecodeRow(e Encoded) []float64 {
	res := make([]float64, 0, len(e.Data)+1)
	cur := e.Start
	res = append(res, float64(cur)/quantizeScale)
	for _, gap := range e.Data {
		cur += int(gap)
		res = append(res, float64(cur)/quantizeScale)
	}
	return res
}

func quantize(v float64) int {
	return int(math.Round(v * quantizeScale))
}
