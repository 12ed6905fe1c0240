package extract

// DefaultPrompt is the extraction policy sent with every request. It is the
// single source of instruction text; callers may override it per run.
const DefaultPrompt = `SYSTEM ROLE: You are a text analysis expert tasked with extracting leadership information from a provided file.

TASK INSTRUCTIONS:

UNDERSTAND: Review the provided file and identify all mentions of individuals holding leadership positions or offices.

BASICS: Determine the format for extracting names, which includes last name, first name, middle name (or middle initial), and suffixes (such as "Jr." and "Ph.D.").

BREAK DOWN: Extract each name into its constituent parts:

Last Name: The family name or surname. Compound surnames stay together as one string.
First Name: The given name, with titles and honorifics stripped.
Middle Name/Middle Initial: Any additional names or initials between the first and last names (e.g., "John M. Doe" would have "M." as a middle initial).
Suffixes: Any titles or designations following the full name (e.g., "Jr.", "Ph.D.", etc.).

ANALYZE: If a field is not applicable or unknown, leave it null. Ensure all extracted information is accurate and consistent in format.

BUILD: Organize the extracted data into JSON format for easy reference.

FINAL ANSWER: Provide the extracted leadership information in JSON format as specified above.`
