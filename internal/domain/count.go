package domain

import (
	"fmt"
	"sort"
)

// Count は集計結果の1行（キーと回数）を表す
type Count struct {
	Value int    `csv:"count"`
	Key   string `csv:"key"`
}

// FrequencyTable はキーごとの出現回数を集計する
type FrequencyTable struct {
	counts map[string]int
}

// NewFrequencyTable は空の集計表を作成する
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// Add はキーの回数にnを加算する
func (f *FrequencyTable) Add(key string, n int) {
	f.counts[key] += n
}

// Get はキーの現在の回数を返す
func (f *FrequencyTable) Get(key string) int {
	return f.counts[key]
}

// Len はキーの数を返す
func (f *FrequencyTable) Len() int {
	return len(f.counts)
}

// Total はすべての回数の合計を返す
func (f *FrequencyTable) Total() int {
	total := 0
	for _, n := range f.counts {
		total += n
	}
	return total
}

// Counts は集計表を順不同のCountのスライスとして返す
func (f *FrequencyTable) Counts() []Count {
	counts := make([]Count, 0, len(f.counts))
	for key, n := range f.counts {
		counts = append(counts, Count{Key: key, Value: n})
	}
	return counts
}

// RankOptions は並び替えと件数制限の指定
// Top が0の場合は回数の昇順で全件、正の場合は降順で上位Top件を返す
type RankOptions struct {
	Top int
}

// Validate は指定値が有効かどうかを検証する
func (o RankOptions) Validate() error {
	if o.Top < 0 {
		return fmt.Errorf("top must not be negative: %d", o.Top)
	}
	return nil
}

// Rank は集計表を並び替えて返す
// 同じ回数の場合はどちらのモードでもキーの辞書順で並べる
func Rank(table *FrequencyTable, opts RankOptions) []Count {
	counts := table.Counts()
	descending := opts.Top > 0

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Value != counts[j].Value {
			if descending {
				return counts[i].Value > counts[j].Value
			}
			return counts[i].Value < counts[j].Value
		}
		return counts[i].Key < counts[j].Key
	})

	if descending && len(counts) > opts.Top {
		counts = counts[:opts.Top]
	}
	return counts
}
