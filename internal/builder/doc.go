/*
Package builder turns the static configuration model (defined in the 'config'
package) into finished op definitions.

For every declaration, in order, the builder:

 1. Enters a new definition on the scope carried by the context.
 2. Declares the explicit type parameters.
 3. Resolves each binding expression to an IR type and records each
    specialization. Parameters that only appear in a specialization are
    declared implicitly.
 4. Exits the scope, which freezes the definition.

The first failure stops the build and is returned with the op name and the
source location attached.
*/
package builder
