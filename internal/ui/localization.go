package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle     = "app_title"
	KeyAddBook      = "add_book"
	KeyDisplayBooks = "display_books"
	KeyListByAuthor = "list_by_author"
	KeyBorrowBook   = "borrow_book"
	KeyReturnBook   = "return_book"
	KeyCountBooks   = "count_books"
	KeyExit         = "exit"
	KeySettings     = "settings"
	KeyFile         = "file"
	KeyLanguage     = "language"
	KeyColumnWidth  = "column_width"
	KeyTextSize     = "text_size"
	KeyOK           = "ok"
	KeySave         = "save"
	KeyCancel       = "cancel"

	// Prompts
	KeyEnterBookName    = "enter_book_name"
	KeyEnterAuthorName  = "enter_author_name"
	KeyEnterPages       = "enter_pages"
	KeyEnterPrice       = "enter_price"
	KeyEnterBorrowTitle = "enter_borrow_title"
	KeyEnterYourName    = "enter_your_name"
	KeyEnterReturnTitle = "enter_return_title"

	// Dialog titles
	KeyInput      = "input"
	KeySuccess    = "success"
	KeyInfo       = "info"
	KeyInputError = "input_error"
	KeyCount      = "count"

	// Messages
	KeyBookAdded        = "book_added"
	KeyFillAllFields    = "fill_all_fields"
	KeyNoBooks          = "no_books"
	KeyBooksList        = "books_list"
	KeyBooksByAuthor    = "books_by_author"
	KeyNoBooksByAuthor  = "no_books_by_author"
	KeyAuthorRequired   = "please_enter_author"
	KeyBorrowed         = "borrowed"
	KeyAlreadyBorrowed  = "already_borrowed"
	KeyBookNotFound     = "book_not_found"
	KeyBorrowInputError = "borrow_input_error"
	KeyReturned         = "returned"
	KeyNotBorrowed      = "not_borrowed"
	KeyReturnInputError = "return_input_error"
	KeyCountMessage     = "count_message"
	KeySettingsSaved    = "settings_saved"

	// Table columns
	KeyColBookName = "col_book_name"
	KeyColAuthor   = "col_author"
	KeyColPages    = "col_pages"
	KeyColPrice    = "col_price"
	KeyColBorrower = "col_borrower"
	KeyAvailable   = "available"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Textf formats the localized text for key with args
func (l *Localization) Textf(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Library Management System",
		KeyAddBook:          "Add Book",
		KeyDisplayBooks:     "Display Books",
		KeyListByAuthor:     "List Books by Author",
		KeyBorrowBook:       "Borrow Book",
		KeyReturnBook:       "Return Book",
		KeyCountBooks:       "Count Books",
		KeyExit:             "Exit",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyColumnWidth:      "Table Column Width",
		KeyTextSize:         "Text Size",
		KeyOK:               "OK",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyEnterBookName:    "Enter book name:",
		KeyEnterAuthorName:  "Enter author name:",
		KeyEnterPages:       "Enter number of pages:",
		KeyEnterPrice:       "Enter price:",
		KeyEnterBorrowTitle: "Enter book name to borrow:",
		KeyEnterYourName:    "Enter your name:",
		KeyEnterReturnTitle: "Enter book name to return:",
		KeyInput:            "Input",
		KeySuccess:          "Success",
		KeyInfo:             "Info",
		KeyInputError:       "Input Error",
		KeyCount:            "Count",
		KeyBookAdded:        "Book added successfully!",
		KeyFillAllFields:    "Please fill in all fields.",
		KeyNoBooks:          "No books available.",
		KeyBooksList:        "Books List",
		KeyBooksByAuthor:    "Books by %s",
		KeyNoBooksByAuthor:  "No books found by this author.",
		KeyAuthorRequired:   "Please enter an author name.",
		KeyBorrowed:         "Book '%s' borrowed successfully by %s.",
		KeyAlreadyBorrowed:  "Book '%s' is already borrowed by %s.",
		KeyBookNotFound:     "Book '%s' not found.",
		KeyBorrowInputError: "Please enter both book name and borrower name.",
		KeyReturned:         "Book '%s' returned successfully.",
		KeyNotBorrowed:      "Book '%s' is not currently borrowed.",
		KeyReturnInputError: "Please enter the book name.",
		KeyCountMessage:     "No of books in library: %d",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyColBookName:      "Book Name",
		KeyColAuthor:        "Author",
		KeyColPages:         "Pages",
		KeyColPrice:         "Price",
		KeyColBorrower:      "Borrower",
		KeyAvailable:        "Available",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Система управления библиотекой",
		KeyAddBook:          "Добавить книгу",
		KeyDisplayBooks:     "Показать книги",
		KeyListByAuthor:     "Книги автора",
		KeyBorrowBook:       "Взять книгу",
		KeyReturnBook:       "Вернуть книгу",
		KeyCountBooks:       "Количество книг",
		KeyExit:             "Выход",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyColumnWidth:      "Ширина столбца",
		KeyTextSize:         "Размер текста",
		KeyOK:               "ОК",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyEnterBookName:    "Введите название книги:",
		KeyEnterAuthorName:  "Введите имя автора:",
		KeyEnterPages:       "Введите количество страниц:",
		KeyEnterPrice:       "Введите цену:",
		KeyEnterBorrowTitle: "Введите название книги, которую берёте:",
		KeyEnterYourName:    "Введите ваше имя:",
		KeyEnterReturnTitle: "Введите название возвращаемой книги:",
		KeyInput:            "Ввод",
		KeySuccess:          "Успех",
		KeyInfo:             "Информация",
		KeyInputError:       "Ошибка ввода",
		KeyCount:            "Количество",
		KeyBookAdded:        "Книга успешно добавлена!",
		KeyFillAllFields:    "Пожалуйста, заполните все поля.",
		KeyNoBooks:          "Книг нет.",
		KeyBooksList:        "Список книг",
		KeyBooksByAuthor:    "Книги автора %s",
		KeyNoBooksByAuthor:  "Книги этого автора не найдены.",
		KeyAuthorRequired:   "Пожалуйста, введите имя автора.",
		KeyBorrowed:         "Книга '%s' выдана читателю %s.",
		KeyAlreadyBorrowed:  "Книга '%s' уже выдана читателю %s.",
		KeyBookNotFound:     "Книга '%s' не найдена.",
		KeyBorrowInputError: "Пожалуйста, введите название книги и имя читателя.",
		KeyReturned:         "Книга '%s' успешно возвращена.",
		KeyNotBorrowed:      "Книга '%s' сейчас не выдана.",
		KeyReturnInputError: "Пожалуйста, введите название книги.",
		KeyCountMessage:     "Книг в библиотеке: %d",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyColBookName:      "Название",
		KeyColAuthor:        "Автор",
		KeyColPages:         "Страницы",
		KeyColPrice:         "Цена",
		KeyColBorrower:      "Читатель",
		KeyAvailable:        "В наличии",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Sistema de Gestão de Biblioteca",
		KeyAddBook:          "Adicionar Livro",
		KeyDisplayBooks:     "Exibir Livros",
		KeyListByAuthor:     "Livros por Autor",
		KeyBorrowBook:       "Emprestar Livro",
		KeyReturnBook:       "Devolver Livro",
		KeyCountBooks:       "Contar Livros",
		KeyExit:             "Sair",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyColumnWidth:      "Largura da Coluna",
		KeyTextSize:         "Tamanho do Texto",
		KeyOK:               "OK",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyEnterBookName:    "Digite o nome do livro:",
		KeyEnterAuthorName:  "Digite o nome do autor:",
		KeyEnterPages:       "Digite o número de páginas:",
		KeyEnterPrice:       "Digite o preço:",
		KeyEnterBorrowTitle: "Digite o nome do livro a emprestar:",
		KeyEnterYourName:    "Digite o seu nome:",
		KeyEnterReturnTitle: "Digite o nome do livro a devolver:",
		KeyInput:            "Entrada",
		KeySuccess:          "Sucesso",
		KeyInfo:             "Informação",
		KeyInputError:       "Erro de Entrada",
		KeyCount:            "Contagem",
		KeyBookAdded:        "Livro adicionado com sucesso!",
		KeyFillAllFields:    "Por favor, preencha todos os campos.",
		KeyNoBooks:          "Nenhum livro disponível.",
		KeyBooksList:        "Lista de Livros",
		KeyBooksByAuthor:    "Livros de %s",
		KeyNoBooksByAuthor:  "Nenhum livro encontrado deste autor.",
		KeyAuthorRequired:   "Por favor, digite o nome do autor.",
		KeyBorrowed:         "Livro '%s' emprestado com sucesso para %s.",
		KeyAlreadyBorrowed:  "Livro '%s' já está emprestado para %s.",
		KeyBookNotFound:     "Livro '%s' não encontrado.",
		KeyBorrowInputError: "Por favor, digite o nome do livro e do leitor.",
		KeyReturned:         "Livro '%s' devolvido com sucesso.",
		KeyNotBorrowed:      "Livro '%s' não está emprestado.",
		KeyReturnInputError: "Por favor, digite o nome do livro.",
		KeyCountMessage:     "Número de livros na biblioteca: %d",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyColBookName:      "Nome do Livro",
		KeyColAuthor:        "Autor",
		KeyColPages:         "Páginas",
		KeyColPrice:         "Preço",
		KeyColBorrower:      "Leitor",
		KeyAvailable:        "Disponível",
	}
}
