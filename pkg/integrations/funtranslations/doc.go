// Package funtranslations provides a client for the FunTranslations API.
//
// [Client.Translate] issues one GET to {base}/{style}.json?text={text} and
// decodes the {success:{total}, contents:{translated,text,translation}}
// response. The client reports failures as errors; the decision to fall back
// to the original text belongs to the caller.
package funtranslations
