package parser

import "testing"

func FuzzParser(f *testing.F) {
	seeds := []string{
		"2014-01-01 open Assets:Checking USD",
		"2014-12-31 close Assets:Checking",
		"2014-08-09 balance Assets:Checking 100.00 USD",
		"2014-05-05 * \"Cafe\" \"Coffee\"\n  Expenses:Food  4.50 USD\n  Assets:Cash",
		"2014-05-06 * \"Store\"\n  Expenses:Shopping  50.00 USD\n  Assets:Checking",
		"option \"title\" \"Example\"",
		"include \"accounts.bean\"",
		"; This is a comment",
		"pushtag #trip",
		"poptag #trip",
		"",
		"  \n\n  \n",
		"; Just a comment\n",
		"2014-01-01 open Assets:Checking USD\n  description: \"Primary checking account\"",
		"2014-07-09 price HOOL 579.18 USD",
		"2014-07-09 note Assets:Checking \"Called about rebate\"",
		"2014-07-09 document Assets:Checking \"/path/to/statement.pdf\"",
		"2014-07-09 event \"location\" \"New York, USA\"",
		"2014-07-09 query \"cash\" \"SELECT * FROM accounts WHERE account ~ 'Cash'\"",
		"2014-07-09 pad Assets:Checking Equity:Opening-Balances",
		"2014-07-09 custom \"budget\" Expenses:Food \"monthly\" 500.00 USD",
		"this is not a directive\n",
		"2020-01-02 balance Assets:Cash 100 + 0.5 USD\n",
		"2020-01-02 balance Assets:Cash 100.00 USD ~ 0.005\n",
		"2020-01-02 note Assets:Cash \"unterminated\n",
		"2020-01-02 note Assets:Cash \"bad \\q escape\"\n",
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("parser panicked on input %q: %v", data, r)
			}
		}()

		file, err := Parse("fuzz.bean", string(data))
		if err == nil && file == nil {
			t.Error("Parse returned nil file with nil error")
		}
	})
}
