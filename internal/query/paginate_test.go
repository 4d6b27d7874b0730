package query

import "testing"

func TestPaginateReconstructsSequence(t *testing.T) {
	items := make([]int, 35)
	for i := range items {
		items[i] = i
	}

	first := Paginate(items, 1, 10)
	if first.Total != 35 || first.TotalPages != 4 {
		t.Fatalf("expected total=35 pages=4, got %+v", first)
	}

	var rebuilt []int
	for page := 1; page <= first.TotalPages; page++ {
		p := Paginate(items, page, 10)
		if len(p.Items) > 10 {
			t.Fatalf("page %d has %d items", page, len(p.Items))
		}
		rebuilt = append(rebuilt, p.Items...)
	}
	if len(rebuilt) != len(items) {
		t.Fatalf("rebuilt %d items, want %d", len(rebuilt), len(items))
	}
	for i := range items {
		if rebuilt[i] != items[i] {
			t.Fatalf("order broken at %d: %d != %d", i, rebuilt[i], items[i])
		}
	}
}

func TestPaginateClipsOutOfRange(t *testing.T) {
	items := []string{"a", "b", "c"}

	p := Paginate(items, 99, 10)
	if len(p.Items) != 0 {
		t.Fatalf("expected empty page, got %+v", p.Items)
	}
	if p.Total != 3 || p.TotalPages != 1 {
		t.Fatalf("totals wrong: %+v", p)
	}

	p = Paginate(items, 0, 2)
	if p.Page != 1 || len(p.Items) != 2 {
		t.Fatalf("expected clamp to page 1, got %+v", p)
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	p := Paginate([]int{}, 1, 10)
	if p.Total != 0 || p.TotalPages != 0 || len(p.Items) != 0 {
		t.Fatalf("expected zero page, got %+v", p)
	}
}

func TestPaginateLastPartialPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	p := Paginate(items, 2, 3)
	if len(p.Items) != 2 || p.Items[0] != 4 || p.Items[1] != 5 {
		t.Fatalf("expected [4 5], got %+v", p.Items)
	}
}
