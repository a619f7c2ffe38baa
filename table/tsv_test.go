package table_test

import (
	"github.com/google/go-cmp/cmp"
	"github.com/hscells/wsieval/table"
	"strings"
	"testing"
)

func TestReadTSV(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    table.Table
		wantErr bool
	}{
		{
			name:  "simple",
			input: "head\tsense1\tsense2\tcluster\nbank\t1\t1\tA\nbank\t2\t2x\tB\n",
			want: table.Table{
				Header: []string{"head", "sense1", "sense2", "cluster"},
				Rows: [][]string{
					{"bank", "1", "1", "A"},
					{"bank", "2", "2x", "B"},
				},
			},
		},
		{
			name:  "quotes are not special",
			input: "head\tcluster\n\"bank\t'a b'\n",
			want: table.Table{
				Header: []string{"head", "cluster"},
				Rows:   [][]string{{"\"bank", "'a b'"}},
			},
		},
		{
			name:  "crlf and no final newline",
			input: "head\tcluster\r\nbank\tA\r\nplant\tB",
			want: table.Table{
				Header: []string{"head", "cluster"},
				Rows:   [][]string{{"bank", "A"}, {"plant", "B"}},
			},
		},
		{
			name:  "empty fields are kept",
			input: "head\tcluster\nbank\t\n",
			want: table.Table{
				Header: []string{"head", "cluster"},
				Rows:   [][]string{{"bank", ""}},
			},
		},
		{
			name:    "ragged",
			input:   "head\tcluster\nbank\tA\tB\n",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.ReadTSV(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadTSV() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadTSV() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
