// Package web serves the storefront over HTTP with gin.
//
// Pages are rendered from embedded html/template files. The handlers only
// depend on the driving.CatalogService and driving.ContentService ports;
// successful HTML responses are kept in a short-lived page cache so that
// repeated visits do not re-read the catalog source.
package web
