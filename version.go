package jtruncate

const Version = "0.1.0"
