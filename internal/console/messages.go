package console

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys double as the English text.
const (
	msgMenuTitle    = "=== Library System ==="
	msgMenuFind     = "1. Find book by author"
	msgMenuAdd      = "2. Add new book"
	msgMenuList     = "3. Show all books"
	msgMenuExit     = "0. Exit"
	msgChoose       = "Choose action: "
	msgAskAuthor    = "Enter author name: "
	msgAskNewAuthor = "Enter author: "
	msgAskBook      = "Enter book title: "
	msgFound        = "The book is on shelf %d"
	msgNotFound     = "Book not found"
	msgAdded        = "Book added successfully!"
	msgAddFailed    = "Failed to add book"
	msgListTitle    = "=== All books ==="
	msgListEmpty    = "(no books)"
	msgColAuthor    = "Author"
	msgColBook      = "Book"
	msgInvalid      = "Invalid command!"
	msgGoodbye      = "Goodbye!"
)

var russian = map[string]string{
	msgMenuTitle:    "=== Библиотечная система ===",
	msgMenuFind:     "1. Найти книгу по автору",
	msgMenuAdd:      "2. Добавить новую книгу",
	msgMenuList:     "3. Показать все книги",
	msgMenuExit:     "0. Выход",
	msgChoose:       "Выберите действие: ",
	msgAskAuthor:    "Введите имя автора: ",
	msgAskNewAuthor: "Введите автора: ",
	msgAskBook:      "Введите название книги: ",
	msgFound:        "Книга находится на полке %d",
	msgNotFound:     "Книга не найдена",
	msgAdded:        "Книга успешно добавлена!",
	msgAddFailed:    "Ошибка при добавлении книги",
	msgListTitle:    "=== Список всех книг ===",
	msgListEmpty:    "(книг нет)",
	msgColAuthor:    "Автор",
	msgColBook:      "Книга",
	msgInvalid:      "Неверная команда!",
	msgGoodbye:      "До свидания!",
}

// Languages lists the languages the console is translated into. The first
// entry is the fallback.
var Languages = []language.Tag{language.English, language.Russian}

var (
	messages = newMessageCatalog()
	matcher  = language.NewMatcher(Languages)
)

func newMessageCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, text := range russian {
		if err := b.SetString(language.Russian, key, text); err != nil {
			panic(err)
		}
	}
	return b
}

// MatchLanguage returns the supported language closest to tag.
func MatchLanguage(tag language.Tag) language.Tag {
	_, idx, _ := matcher.Match(tag)
	return Languages[idx]
}

// NewPrinter returns a printer that localizes console text for tag.
func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(MatchLanguage(tag), message.Catalog(messages))
}
