package domain

import (
	"encoding/json"
	"testing"
)

func TestPageToken_JSON(t *testing.T) {
	// numeric cursor marshals as a bare number
	b, err := json.Marshal(Page{Results: []Hotel{}, NextPage: NumToken(2), Total: 5})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"results":[],"nextPage":2,"total":5}` {
		t.Fatalf("numeric cursor: %s", b)
	}

	// opaque cursor marshals as a string
	b, _ = json.Marshal(Page{Results: []Hotel{}, NextPage: StrToken("abc"), Total: 40})
	if string(b) != `{"results":[],"nextPage":"abc","total":40}` {
		t.Fatalf("string cursor: %s", b)
	}

	// nil cursor marshals as null, the end-of-results signal
	b, _ = json.Marshal(Page{Results: []Hotel{}, Total: 5})
	if string(b) != `{"results":[],"nextPage":null,"total":5}` {
		t.Fatalf("nil cursor: %s", b)
	}
}

func TestPageToken_UnmarshalBothShapes(t *testing.T) {
	var p Page
	if err := json.Unmarshal([]byte(`{"results":[],"nextPage":3,"total":5}`), &p); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if p.NextPage == nil || p.NextPage.Num != 3 || p.NextPage.Token != "" {
		t.Fatalf("number cursor: %+v", p.NextPage)
	}

	if err := json.Unmarshal([]byte(`{"results":[],"nextPage":"tok","total":5}`), &p); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if p.NextPage == nil || p.NextPage.Token != "tok" {
		t.Fatalf("string cursor: %+v", p.NextPage)
	}

	if err := json.Unmarshal([]byte(`{"results":[],"nextPage":null,"total":5}`), &p); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if p.NextPage != nil {
		t.Fatalf("null cursor must stay nil: %+v", p.NextPage)
	}

	var tok PageToken
	if err := json.Unmarshal([]byte(`true`), &tok); err == nil {
		t.Fatalf("non number/string cursor must fail")
	}
}

func TestBounds_Contains(t *testing.T) {
	b := Bounds{SW: GeoPoint{Lat: 40.0, Lng: -74.0}, NE: GeoPoint{Lat: 41.0, Lng: -73.0}}
	if !b.Contains(40.5, -73.5) {
		t.Fatalf("inside point rejected")
	}
	if !b.Contains(40.0, -74.0) || !b.Contains(41.0, -73.0) {
		t.Fatalf("edges are inclusive")
	}
	if b.Contains(39.99, -73.5) || b.Contains(40.5, -72.99) {
		t.Fatalf("outside point accepted")
	}
}
