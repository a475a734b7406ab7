package entity

// Option はセレクターの選択肢です。
type Option struct {
	Label string
	Value string
}

// Layout はダッシュボード画面の静的な構成です。起動時に一度だけ組み立てられます。
type Layout struct {
	PageTitle     string
	Heading       string
	Subtitle      string
	SelectorLabel string
	SelectorID    string
	Options       []Option
	Default       string
	GraphID       string
	GraphHeight   string
}
