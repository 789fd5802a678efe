// Package fuzztests houses Go fuzz harnesses for the texcalc front end
// (source -> lexer -> diagfmt). They guard against panics and broken span
// invariants on arbitrary input.
//
// Назначение: прогонять произвольные байты через загрузку исходника, лексер и
// рендер диагностики.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/diag, internal/diagfmt,
// internal/testkit.

package fuzztests
