package records

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/ip-filter/internal/ipv4"
	"github.com/qdm12/ip-filter/internal/records/mock_records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Reader_Read(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		settings    Settings
		input       string
		buildLogger func(ctrl *gomock.Controller) *mock_records.MockLogger
		addresses   []string
	}{
		"empty_input": {
			settings:  Settings{Delimiter: '\t'},
			addresses: []string{},
		},
		"first_column": {
			settings: Settings{Delimiter: '\t'},
			input: "113.162.145.156\t111\t0\n" +
				"157.39.22.224\t5\t6\n" +
				"1.2.3.004\t1\t1\n",
			addresses: []string{"113.162.145.156", "157.39.22.224", "1.2.3.004"},
		},
		"second_column_comma": {
			settings:  Settings{Column: 1, Delimiter: ','},
			input:     "a,1.2.3.4\nb,5.6.7.8\n",
			addresses: []string{"1.2.3.4", "5.6.7.8"},
		},
		"malformed_rows_skipped": {
			settings: Settings{Delimiter: '\t'},
			input: "1.2.3.4\t1\n" +
				"67.232.81\t1\n" +
				"x.1.1.1\t1\n" +
				"5.6.7.8\t1\n",
			buildLogger: func(ctrl *gomock.Controller) *mock_records.MockLogger {
				logger := mock_records.NewMockLogger(ctrl)
				logger.EXPECT().Warn(`line 2: malformed IPv4 address: ` +
					`dot separated segments count is not 4: "67.232.81" has 3 segments`)
				logger.EXPECT().Warn(`line 3: malformed IPv4 address: ` +
					`segment is not a decimal number: segment 0 "x" of "x.1.1.1"`)
				return logger
			},
			addresses: []string{"1.2.3.4", "5.6.7.8"},
		},
		"missing_column_skipped": {
			settings: Settings{Column: 2, Delimiter: '\t'},
			input: "a\tb\t1.2.3.4\n" +
				"a\tb\n" +
				"a\tb\t5.6.7.8\n",
			buildLogger: func(ctrl *gomock.Controller) *mock_records.MockLogger {
				logger := mock_records.NewMockLogger(ctrl)
				logger.EXPECT().Debug("line 2: has 2 fields, skipping it")
				return logger
			},
			addresses: []string{"1.2.3.4", "5.6.7.8"},
		},
		"stops_at_empty_line": {
			settings:  Settings{Delimiter: '\t'},
			input:     "1.2.3.4\n\n5.6.7.8\n",
			addresses: []string{"1.2.3.4"},
		},
		"carriage_return_trimmed": {
			settings:  Settings{Delimiter: '\t'},
			input:     "1.2.3.4\r\n5.6.7.8\r\n",
			addresses: []string{"1.2.3.4", "5.6.7.8"},
		},
		"no_trailing_newline": {
			settings:  Settings{Delimiter: '\t'},
			input:     "1.2.3.4\n5.6.7.8",
			addresses: []string{"1.2.3.4", "5.6.7.8"},
		},
		"narrowed_octet": {
			settings:  Settings{Delimiter: '\t'},
			input:     "67.232.81.299\n",
			addresses: []string{"67.232.81.299"},
		},
		"strict_octet": {
			settings: Settings{Delimiter: '\t', Strict: true},
			input:    "67.232.81.299\n1.2.3.4\n",
			buildLogger: func(ctrl *gomock.Controller) *mock_records.MockLogger {
				logger := mock_records.NewMockLogger(ctrl)
				logger.EXPECT().Warn(`line 1: malformed IPv4 address: ` +
					`octet value is larger than 255: segment 3 has value 299 in "67.232.81.299"`)
				return logger
			},
			addresses: []string{"1.2.3.4"},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			logger := mock_records.NewMockLogger(ctrl)
			if testCase.buildLogger != nil {
				logger = testCase.buildLogger(ctrl)
			}
			reader := New(testCase.settings, logger)

			addresses, err := reader.Read(context.Background(),
				strings.NewReader(testCase.input))

			require.NoError(t, err)
			texts := make([]string, len(addresses))
			for i, address := range addresses {
				texts[i] = address.String()
			}
			assert.Equal(t, testCase.addresses, texts)
		})
	}
}

func Test_Reader_Read_longRows(t *testing.T) {
	t.Parallel()

	const longLength = 70000 // larger than bufio default buffer sizes
	longField := strings.Repeat("a", longLength)

	testCases := map[string]struct {
		input       string
		buildLogger func(ctrl *gomock.Controller) *mock_records.MockLogger
		addresses   []string
	}{
		"long_row_with_valid_address": {
			input: "1.2.3.4\tx\n" +
				"5.6.7.8\t" + longField + "\n" +
				"9.9.9.9\tx\n",
			addresses: []string{"1.2.3.4", "5.6.7.8", "9.9.9.9"},
		},
		"long_malformed_address_between_valid_rows": {
			input: "1.2.3.4\tx\n" +
				longField + "\tx\n" +
				"9.9.9.9\tx\n",
			buildLogger: func(ctrl *gomock.Controller) *mock_records.MockLogger {
				logger := mock_records.NewMockLogger(ctrl)
				logger.EXPECT().Warn(`line 2: malformed IPv4 address: ` +
					`dot separated segments count is not 4: "` + longField + `" has 1 segments`)
				return logger
			},
			addresses: []string{"1.2.3.4", "9.9.9.9"},
		},
		"long_last_row_without_newline": {
			input:     "1.2.3.4\tx\n9.9.9.9\t" + longField,
			addresses: []string{"1.2.3.4", "9.9.9.9"},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			logger := mock_records.NewMockLogger(ctrl)
			if testCase.buildLogger != nil {
				logger = testCase.buildLogger(ctrl)
			}
			reader := New(Settings{Delimiter: '\t'}, logger)

			addresses, err := reader.Read(context.Background(),
				strings.NewReader(testCase.input))

			require.NoError(t, err)
			texts := make([]string, len(addresses))
			for i, address := range addresses {
				texts[i] = address.String()
			}
			assert.Equal(t, testCase.addresses, texts)
		})
	}
}

func Test_Reader_Read_canceledContext(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	reader := New(Settings{Delimiter: '\t'}, mock_records.NewMockLogger(ctrl))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	addresses, err := reader.Read(ctx, strings.NewReader("1.2.3.4\n"))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, addresses)
}

func Test_Reader_Read_streamError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	reader := New(Settings{Delimiter: '\t'}, mock_records.NewMockLogger(ctrl))
	errTest := errors.New("test error")
	input := iotest.ErrReader(errTest)

	addresses, err := reader.Read(context.Background(), input)

	assert.ErrorIs(t, err, errTest)
	assert.EqualError(t, err, "reading line 1: test error")
	assert.Nil(t, addresses)
}

func Test_Reader_Read_streamErrorAfterRows(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	reader := New(Settings{Delimiter: '\t'}, mock_records.NewMockLogger(ctrl))
	errTest := errors.New("test error")
	input := io.MultiReader(strings.NewReader("1.2.3.4\n"), iotest.ErrReader(errTest))

	addresses, err := reader.Read(context.Background(), input)

	assert.ErrorIs(t, err, errTest)
	assert.EqualError(t, err, "reading line 2: test error")
	assert.Nil(t, addresses)
}

func Test_Reader_Read_values(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	reader := New(Settings{Delimiter: '\t'}, mock_records.NewMockLogger(ctrl))

	addresses, err := reader.Read(context.Background(),
		strings.NewReader("10.0.12.11\t1\n"))

	require.NoError(t, err)
	assert.Equal(t, []ipv4.Address{ipv4.MustParse("10.0.12.11")}, addresses)
}
